package order

import (
	"testing"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition_Strict(t *testing.T) {
	tests := []struct {
		name string
		from entity.OrderStatus
		to   entity.OrderStatus
		want bool
	}{
		{"novo para aprovação", entity.OrderNovo, entity.OrderAguardandoAprovacao, true},
		{"novo pulando para faturado", entity.OrderNovo, entity.OrderFaturado, true},
		{"aprovado volta uma etapa", entity.OrderAprovado, entity.OrderAguardandoAprovacao, true},
		{"aprovado não volta duas etapas", entity.OrderAprovado, entity.OrderNovo, false},
		{"enviado para entregue", entity.OrderEnviado, entity.OrderEntregue, true},
		{"cancelar pedido novo", entity.OrderNovo, entity.OrderCancelado, true},
		{"cancelar pedido enviado", entity.OrderEnviado, entity.OrderCancelado, true},
		{"entregue não regride", entity.OrderEntregue, entity.OrderNovo, false},
		{"entregue não volta para enviado", entity.OrderEntregue, entity.OrderEnviado, false},
		{"entregue não cancela", entity.OrderEntregue, entity.OrderCancelado, false},
		{"cancelado é absorvente", entity.OrderCancelado, entity.OrderNovo, false},
		{"mesmo status não é transição", entity.OrderAprovado, entity.OrderAprovado, false},
		{"status desconhecido", entity.OrderStatus("x"), entity.OrderNovo, false},
		{"destino desconhecido", entity.OrderNovo, entity.OrderStatus("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(PolicyStrict, tt.from, tt.to))
		})
	}
}

func TestCanTransition_Free(t *testing.T) {
	assert.True(t, CanTransition(PolicyFree, entity.OrderEntregue, entity.OrderNovo))
	assert.True(t, CanTransition(PolicyFree, entity.OrderCancelado, entity.OrderAprovado))
	assert.False(t, CanTransition(PolicyFree, entity.OrderNovo, entity.OrderNovo))
	assert.False(t, CanTransition(PolicyFree, entity.OrderNovo, entity.OrderStatus("??")))
}

func TestAllowedTargets(t *testing.T) {
	assert.Empty(t, AllowedTargets(PolicyStrict, entity.OrderEntregue))
	assert.Equal(t,
		[]entity.OrderStatus{entity.OrderEnviado, entity.OrderEntregue, entity.OrderCancelado},
		AllowedTargets(PolicyStrict, entity.OrderFaturado)[1:],
	)
	assert.Equal(t, entity.OrderEmSeparacao, AllowedTargets(PolicyStrict, entity.OrderFaturado)[0])
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, PolicyFree, ParsePolicy("free"))
	assert.Equal(t, PolicyStrict, ParsePolicy("strict"))
	assert.Equal(t, PolicyStrict, ParsePolicy(" Strict "))
	assert.Equal(t, PolicyFree, ParsePolicy(""))
	assert.Equal(t, PolicyFree, ParsePolicy("outra"))
}
