package domain

import "time"

// Account é uma conta de anunciante do usuário na fonte de gasto.
// AdvertiserID nulo representa a conta legada/padrão configurada no ambiente.
type Account struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	AdvertiserID *string   `json:"advertiser_id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Account) AdvertiserIDOrEmpty() string {
	if a == nil || a.AdvertiserID == nil {
		return ""
	}
	return *a.AdvertiserID
}

type AccountResponse struct {
	ID           string  `json:"id"`
	AdvertiserID *string `json:"advertiser_id"`
	Name         string  `json:"name"`
	IsDefault    bool    `json:"is_default"`
}
