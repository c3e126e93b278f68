package clock_fx

import (
	"go.uber.org/fx"

	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

var Module = fx.Provide(provideClock)

func provideClock() utils.Clock {
	return utils.SystemClock{}
}
