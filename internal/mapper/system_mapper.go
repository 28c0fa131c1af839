package mapper

import (
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/model"
)

type SystemStatusMapper struct{}

func NewSystemStatusMapper() *SystemStatusMapper {
	return &SystemStatusMapper{}
}

func (m *SystemStatusMapper) ToEntity(s *model.SystemStatus) *entity.SystemStatus {
	if s == nil {
		return nil
	}
	return &entity.SystemStatus{
		Id:                  s.Id,
		DebatesLive:         s.DebatesLive,
		MessagesLast10Min:   s.MessagesLast10Min,
		CitationCoverage24h: s.CitationCoverage24h,
		GenerationEnabled:   s.GenerationEnabled,
		BudgetState:         s.BudgetState,
		SeedVersion:         s.SeedVersion,
		SeededAt:            s.SeededAt,
		LastUpdated:         s.LastUpdated,
	}
}

func (m *SystemStatusMapper) ToModel(e *entity.SystemStatus) *model.SystemStatus {
	if e == nil {
		return nil
	}
	return &model.SystemStatus{
		Id:                  e.Id,
		DebatesLive:         e.DebatesLive,
		MessagesLast10Min:   e.MessagesLast10Min,
		CitationCoverage24h: e.CitationCoverage24h,
		GenerationEnabled:   e.GenerationEnabled,
		BudgetState:         e.BudgetState,
		SeedVersion:         e.SeedVersion,
		SeededAt:            e.SeededAt,
		LastUpdated:         e.LastUpdated,
	}
}

type GenerationLogMapper struct{}

func NewGenerationLogMapper() *GenerationLogMapper {
	return &GenerationLogMapper{}
}

func (m *GenerationLogMapper) ToEntity(l *model.GenerationLog) *entity.GenerationLog {
	if l == nil {
		return nil
	}
	return &entity.GenerationLog{
		Id:               l.Id,
		CycleType:        l.CycleType,
		StartedAt:        l.StartedAt,
		FinishedAt:       l.FinishedAt,
		DurationMs:       l.DurationMs,
		MissionsTouched:  l.MissionsTouched,
		MessagesCreated:  l.MessagesCreated,
		ClaimsCreated:    l.ClaimsCreated,
		CitationsCreated: l.CitationsCreated,
		Errors:           fromJSONList(l.Errors),
		Status:           entity.GenerationStatus(l.Status),
	}
}

func (m *GenerationLogMapper) ToModel(e *entity.GenerationLog) *model.GenerationLog {
	if e == nil {
		return nil
	}
	return &model.GenerationLog{
		Id:               e.Id,
		CycleType:        e.CycleType,
		StartedAt:        e.StartedAt,
		FinishedAt:       e.FinishedAt,
		DurationMs:       e.DurationMs,
		MissionsTouched:  e.MissionsTouched,
		MessagesCreated:  e.MessagesCreated,
		ClaimsCreated:    e.ClaimsCreated,
		CitationsCreated: e.CitationsCreated,
		Errors:           toJSONList(e.Errors),
		Status:           string(e.Status),
	}
}

func (m *GenerationLogMapper) ToEntities(models []*model.GenerationLog) []*entity.GenerationLog {
	entities := make([]*entity.GenerationLog, 0, len(models))
	for _, l := range models {
		entities = append(entities, m.ToEntity(l))
	}
	return entities
}

type MissionLeaseMapper struct{}

func NewMissionLeaseMapper() *MissionLeaseMapper {
	return &MissionLeaseMapper{}
}

func (m *MissionLeaseMapper) ToEntity(l *model.MissionLease) *entity.MissionLease {
	if l == nil {
		return nil
	}
	return &entity.MissionLease{
		MissionId:  l.MissionId,
		AcquiredAt: l.AcquiredAt,
		ExpiresAt:  l.ExpiresAt,
	}
}

func (m *MissionLeaseMapper) ToModel(e *entity.MissionLease) *model.MissionLease {
	if e == nil {
		return nil
	}
	return &model.MissionLease{
		MissionId:  e.MissionId,
		AcquiredAt: e.AcquiredAt,
		ExpiresAt:  e.ExpiresAt,
	}
}
