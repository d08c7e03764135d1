package providers

import (
	"fmt"
	"hydrod/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	if cv.conf.Goal.Min >= cv.conf.Goal.Max {
		return fmt.Errorf("goal.min (%d) must be below goal.max (%d)", cv.conf.Goal.Min, cv.conf.Goal.Max)
	}
	if cv.conf.Bottle.InitialVolume > cv.conf.Bottle.Capacity {
		return fmt.Errorf("bottle.initialVolume (%d) exceeds bottle.capacity (%d)", cv.conf.Bottle.InitialVolume, cv.conf.Bottle.Capacity)
	}
	if cv.conf.Session.InitialConsumption > cv.conf.Goal.Max {
		return fmt.Errorf("session.initialConsumption (%d) exceeds goal.max (%d)", cv.conf.Session.InitialConsumption, cv.conf.Goal.Max)
	}
	return nil
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}
