// Package order concentra as regras do ciclo de vida do pedido: transições de
// status, cálculo de totais e o histórico de alterações.
package order

import (
	"strings"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// Policy regra aplicada às transições de status.
type Policy string

const (
	// PolicyStrict avança para qualquer etapa posterior, recua no máximo uma
	// etapa, cancela a partir de qualquer status não terminal.
	PolicyStrict Policy = "strict"
	// PolicyFree permite qualquer status a partir de qualquer status.
	PolicyFree Policy = "free"
)

// ParsePolicy converte o valor de configuração. Só "strict" restringe; o resto vira free.
func ParsePolicy(s string) Policy {
	if Policy(strings.ToLower(strings.TrimSpace(s))) == PolicyStrict {
		return PolicyStrict
	}
	return PolicyFree
}

// CanTransition indica se from -> to é permitido pela política.
// O mesmo status não é uma transição (devolve false).
func CanTransition(p Policy, from, to entity.OrderStatus) bool {
	if !from.IsValid() || !to.IsValid() || from == to {
		return false
	}
	if p == PolicyFree {
		return true
	}
	if from.IsTerminal() {
		return false
	}
	if to == entity.OrderCancelado {
		return true
	}
	fromStep, toStep := from.Step(), to.Step()
	return toStep > fromStep || toStep == fromStep-1
}

// AllowedTargets lista os destinos possíveis a partir de from, na ordem do fluxo.
func AllowedTargets(p Policy, from entity.OrderStatus) []entity.OrderStatus {
	all := append(append([]entity.OrderStatus{}, entity.OrderFlow...), entity.OrderCancelado)
	out := make([]entity.OrderStatus, 0, len(all))
	for _, to := range all {
		if CanTransition(p, from, to) {
			out = append(out, to)
		}
	}
	return out
}
