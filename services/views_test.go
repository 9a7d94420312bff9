package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinPrice(t *testing.T) {
	opt := func(p string) entity.ServiceOption {
		return entity.ServiceOption{PricePerPerson: price(t, p)}
	}

	tests := []struct {
		name    string
		options []entity.ServiceOption
		want    string
	}{
		{"no options", nil, ""},
		{"single option", []entity.ServiceOption{opt("25.00")}, "25.00"},
		{"picks the minimum", []entity.ServiceOption{opt("50.00"), opt("35.00"), opt("75.00")}, "35.00"},
		{"numeric not lexicographic", []entity.ServiceOption{opt("9.00"), opt("10.00")}, "9.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinPrice(tt.options)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(price(t, tt.want)), "min = %s, want %s", got, tt.want)
		})
	}
}
