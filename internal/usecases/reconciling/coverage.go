package reconciling

import (
	"slices"
	"time"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
)

// SelectCoverage escolhe, entre importações do mesmo intervalo, um subconjunto sem
// dias em comum. A importação atualizada por último fica com os seus dias; qualquer
// outra que repita um dia já coberto é descartada por inteiro. Em empate de
// atualização vence o período mais longo. A ordem de entrada é preservada.
func SelectCoverage(imports []*domain.PeriodTotals) []*domain.PeriodTotals {
	candidates := make([]int, 0, len(imports))
	for i, item := range imports {
		if item == nil || item.StartDate.After(item.EndDate) {
			continue
		}
		candidates = append(candidates, i)
	}

	slices.SortStableFunc(candidates, func(a, b int) int {
		left, right := imports[a], imports[b]
		if cmp := right.UpdatedAt.Compare(left.UpdatedAt); cmp != 0 {
			return cmp
		}
		return periodDays(right) - periodDays(left)
	})

	covered := make(map[string]struct{})
	selected := make([]bool, len(imports))
	for _, idx := range candidates {
		item := imports[idx]

		days := importDays(item)
		if anyCovered(days, covered) {
			continue
		}

		for _, day := range days {
			covered[day] = struct{}{}
		}
		selected[idx] = true
	}

	result := make([]*domain.PeriodTotals, 0, len(candidates))
	for i, item := range imports {
		if selected[i] {
			result = append(result, item)
		}
	}

	return result
}

func importDays(item *domain.PeriodTotals) []string {
	days := make([]string, 0, periodDays(item))
	for day := item.StartDate; !day.After(item.EndDate); day = day.AddDate(0, 0, 1) {
		days = append(days, day.Format(time.DateOnly))
	}
	return days
}

func periodDays(item *domain.PeriodTotals) int {
	return int(item.EndDate.Sub(item.StartDate).Hours()/24) + 1
}

func anyCovered(days []string, covered map[string]struct{}) bool {
	for _, day := range days {
		if _, ok := covered[day]; ok {
			return true
		}
	}
	return false
}
