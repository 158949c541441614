package scheduler

import (
	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/utils"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic offer expiry sweep
type Scheduler struct {
	cron *cron.Cron
	spec string
}

// New creates a scheduler with the given cron spec, e.g. "@daily"
func New(spec string) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		spec: spec,
	}
}

// Start registers the sweep job and starts the cron loop
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		expired, err := utils.SweepExpiredOffers(config.DB)
		if err != nil {
			utils.LogError("Scheduled offer sweep failed: %v", err)
			return
		}
		utils.LogInfo("Scheduled offer sweep expired %d offers", expired)
	})
	if err != nil {
		return utils.WrapError(err, "invalid sweep cron expression")
	}

	s.cron.Start()
	utils.LogInfo("Offer expiry sweep scheduled: %s", s.spec)
	return nil
}

// Stop halts the cron loop, letting a running sweep finish
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
