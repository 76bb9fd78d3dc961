package services_test

import (
	"testing"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name          string
		printType     order.PrintType
		selectedPages string
		copies        int
		want          float64
	}{
		{
			name:          "color_all_pages_two_copies",
			printType:     order.PrintTypeColor,
			selectedPages: "all",
			copies:        2,
			want:          160, // 8 * 10 * 2
		},
		{
			name:          "spiral_binding_page_subset",
			printType:     order.PrintTypeSpiralBinding,
			selectedPages: "p1-p3",
			copies:        1,
			want:          32.5, // 1.5 * 5 + 25
		},
		{
			name:          "soft_binding_all_pages",
			printType:     order.PrintTypeSoftBinding,
			selectedPages: "all",
			copies:        1,
			want:          40, // 1.5 * 10 + 25
		},
		{
			name:          "black_and_white_subset_three_copies",
			printType:     order.PrintTypeBlackAndWhite,
			selectedPages: "1-4",
			copies:        3,
			want:          22.5, // 1.5 * 5 * 3
		},
		{
			name:          "custom_print_is_always_zero",
			printType:     order.PrintTypeCustomPrint,
			selectedPages: "all",
			copies:        50,
			want:          0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.EstimateCost(tt.printType, tt.selectedPages, tt.copies)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEstimateCost_IsDeterministic(t *testing.T) {
	first := services.EstimateCost(order.PrintTypeColor, "all", 2)
	second := services.EstimateCost(order.PrintTypeColor, "all", 2)
	assert.Equal(t, first, second)
}
