package mood

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/config"
	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/logger"
	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/mood/classifier"
)

// Maintenance periodically verifies the persisted model artifact and
// repairs it by retraining when the signature or version check fails. It
// only touches the on-disk artifact; a running engine keeps serving from
// its in-memory pipeline and picks up the repaired file on next start.
type Maintenance struct {
	cfg  *config.EngineConfig
	log  *logger.Logger
	cron *cron.Cron
}

// NewMaintenance creates the maintenance scheduler
func NewMaintenance(cfg *config.EngineConfig, log *logger.Logger) *Maintenance {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Maintenance{
		cfg:  cfg,
		log:  log.WithField("component", "maintenance"),
		cron: cron.New(),
	}
}

// Start schedules the integrity check. An empty schedule disables the job.
func (m *Maintenance) Start() error {
	if m.cfg.MaintenanceSchedule == "" {
		m.log.Info("maintenance schedule empty, artifact checks disabled")
		return nil
	}

	if _, err := m.cron.AddFunc(m.cfg.MaintenanceSchedule, m.checkArtifact); err != nil {
		return fmt.Errorf("invalid maintenance schedule %q: %w", m.cfg.MaintenanceSchedule, err)
	}

	m.cron.Start()
	m.log.Info("scheduled artifact integrity check: %s", m.cfg.MaintenanceSchedule)
	return nil
}

// Stop halts the scheduler and waits for a running job, bounded by the
// configured shutdown timeout.
func (m *Maintenance) Stop() error {
	stopCtx := m.cron.Stop()

	ctx := context.Background()
	if m.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.ShutdownTimeout)
		defer cancel()
	}

	select {
	case <-stopCtx.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("maintenance job did not stop within %s", m.cfg.ShutdownTimeout)
	}
}

// checkArtifact verifies the persisted artifact and rewrites it from a
// fresh training run when verification fails.
func (m *Maintenance) checkArtifact() {
	secret := []byte(m.cfg.ArtifactSecret)

	err := classifier.VerifyArtifact(m.cfg.ModelPath, secret, m.cfg.ModelVersion)
	if err == nil {
		m.log.Debug("model artifact verified: %s", m.cfg.ModelPath)
		return
	}

	m.log.WithField("reason", err.Error()).Warn("model artifact failed verification, rebuilding")

	trained, err := classifier.Train(classifier.TrainingCorpus(), m.cfg.ModelVersion)
	if err != nil {
		m.log.Error("failed to retrain model during maintenance: %v", err)
		return
	}

	if err := classifier.SaveArtifact(m.cfg.ModelPath, secret, trained); err != nil {
		m.log.Error("failed to persist rebuilt model artifact: %v", err)
		return
	}

	m.log.Info("rebuilt model artifact at %s", m.cfg.ModelPath)
}
