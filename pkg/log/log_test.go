package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		expectID string
	}{
		{name: "usa o ID recebido", incoming: "req-123", expectID: "req-123"},
		{name: "ID com espaços é aparado", incoming: "  req-9 ", expectID: "req-9"},
		{name: "sem ID gera um UUID", incoming: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, id := WithCorrelationID(context.Background(), tt.incoming)

			if tt.expectID != "" {
				assert.Equal(t, tt.expectID, id)
			} else {
				_, err := uuid.Parse(id)
				require.NoError(t, err)
			}
			assert.Equal(t, id, GetCorrelationID(ctx))
		})
	}
}

func TestForContext(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	previous := L
	L = &logger{entry: logrus.NewEntry(base)}
	defer func() { L = previous }()

	ctx, _ := WithCorrelationID(context.Background(), "abc")
	ForContext(ctx).WithField("account_id", "acc-1").Info("teste")

	assert.Contains(t, buf.String(), `"correlation_id":"abc"`)
	assert.Contains(t, buf.String(), `"account_id":"acc-1"`)
}

func TestGetCorrelationID_SemValor(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}
