package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bhzconnection/escola/internal/lib/job"
	"github.com/bhzconnection/escola/internal/model"
)

// PresencaService records attendance and notifies guardians of absences.
type PresencaService struct {
	presencas PresencaStore
	alunos    AlunoStore
	tasks     TaskEnqueuer
}

// NewPresencaService builds the service. tasks may be nil, in which case no
// notifications are sent.
func NewPresencaService(presencas PresencaStore, alunos AlunoStore, tasks TaskEnqueuer) *PresencaService {
	return &PresencaService{presencas: presencas, alunos: alunos, tasks: tasks}
}

// Record stores an attendance entry for an existing student. When the entry
// is an absence every guardian with an email gets a notification job.
func (s *PresencaService) Record(ctx context.Context, p *model.Presenca) (*model.Presenca, error) {
	aluno, err := s.alunos.GetByID(ctx, p.AlunoID)
	if err != nil {
		return nil, err
	}

	saved, err := s.presencas.Save(ctx, p)
	if err != nil {
		return nil, err
	}

	if saved.IsAbsence() {
		s.notifyGuardians(ctx, aluno, saved)
	}

	return saved, nil
}

func (s *PresencaService) Get(ctx context.Context, id int64) (*model.Presenca, error) {
	return s.presencas.GetByID(ctx, id)
}

func (s *PresencaService) ListByAluno(ctx context.Context, alunoID int64) ([]model.Presenca, error) {
	if _, err := s.alunos.GetByID(ctx, alunoID); err != nil {
		return nil, err
	}
	return s.presencas.ListByAluno(ctx, alunoID)
}

// Update replaces an entry. Guardians are notified only when the entry turns
// into an absence.
func (s *PresencaService) Update(ctx context.Context, p *model.Presenca) (*model.Presenca, error) {
	previous, err := s.presencas.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	aluno, err := s.alunos.GetByID(ctx, p.AlunoID)
	if err != nil {
		return nil, err
	}

	updated, err := s.presencas.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	if updated.IsAbsence() && !previous.IsAbsence() {
		s.notifyGuardians(ctx, aluno, updated)
	}

	return updated, nil
}

func (s *PresencaService) Delete(ctx context.Context, id int64) error {
	return s.presencas.Delete(ctx, &model.Presenca{ID: id})
}

// notifyGuardians enqueues one job per guardian. Failures are logged and
// never reach the caller.
func (s *PresencaService) notifyGuardians(ctx context.Context, aluno *model.Aluno, p *model.Presenca) {
	if s.tasks == nil {
		return
	}

	log := zerolog.Ctx(ctx).With().
		Int64("aluno_id", aluno.ID).
		Int64("presenca_id", p.ID).
		Logger()

	guardians, err := s.alunos.ListResponsaveis(ctx, aluno.ID)
	if err != nil {
		log.Warn().Err(err).Msg("could not load guardians for absence notification")
		return
	}

	for _, g := range guardians {
		if g.Email == "" {
			continue
		}

		task, err := job.NewAbsenceNotificationTask(job.AbsenceNotificationPayload{
			PresencaID:   p.ID,
			To:           g.Email,
			GuardianName: g.Name,
			StudentName:  aluno.Name,
			Status:       p.Status,
			Reason:       p.ReasonMissingClass,
		})
		if err != nil {
			log.Error().Err(err).Msg("could not build absence notification task")
			continue
		}

		if _, err := s.tasks.EnqueueContext(ctx, task); err != nil {
			log.Error().Err(err).Int64("responsavel_id", g.ID).Msg("could not enqueue absence notification")
			continue
		}

		log.Info().Int64("responsavel_id", g.ID).Msg("absence notification enqueued")
	}
}
