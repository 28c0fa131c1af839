package scheduler

import (
	"context"

	"signal-for-good-be/internal/pkg/logger"
	"signal-for-good-be/internal/service"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically runs the debate generator. The generation flag in
// system status is checked inside the cycle, so a disabled generator produces
// cheap no-op ticks.
type Scheduler struct {
	cron         *cron.Cron
	cycleService service.ICycleService
	logger       logger.ILogger
	cronSpec     string
}

func New(cycleService service.ICycleService, log logger.ILogger, cronSpec string) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		cycleService: cycleService,
		logger:       log,
		cronSpec:     cronSpec,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cronSpec, func() {
		res, err := s.cycleService.RunCycle(context.Background())
		if err != nil {
			s.logger.Error("scheduler", "cycle run failed", map[string]interface{}{"error": err.Error()})
			return
		}
		if res.Skipped {
			return
		}
		s.logger.Info("scheduler", "cycle finished", map[string]interface{}{
			"missions_touched": res.MissionsTouched,
			"messages_created": res.MessagesCreated,
			"errors":           len(res.Errors),
		})
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
