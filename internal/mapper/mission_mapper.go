package mapper

import (
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/model"
)

type MissionMapper struct{}

func NewMissionMapper() *MissionMapper {
	return &MissionMapper{}
}

func (m *MissionMapper) ToEntity(mm *model.Mission) *entity.Mission {
	if mm == nil {
		return nil
	}
	return &entity.Mission{
		Id:            mm.Id,
		BucketId:      mm.BucketId,
		Title:         mm.Title,
		CoreQuestion:  mm.CoreQuestion,
		DebateHook:    mm.DebateHook,
		SuccessMetric: mm.SuccessMetric,
		Status:        entity.MissionStatus(mm.Status),
		IsLive:        mm.IsLive,
		StartedAt:     mm.StartedAt,
		CompletedAt:   mm.CompletedAt,
		CreatedAt:     mm.CreatedAt,
		UpdatedAt:     mm.UpdatedAt,
	}
}

func (m *MissionMapper) ToModel(e *entity.Mission) *model.Mission {
	if e == nil {
		return nil
	}
	return &model.Mission{
		Id:            e.Id,
		BucketId:      e.BucketId,
		Title:         e.Title,
		CoreQuestion:  e.CoreQuestion,
		DebateHook:    e.DebateHook,
		SuccessMetric: e.SuccessMetric,
		Status:        string(e.Status),
		IsLive:        e.IsLive,
		StartedAt:     e.StartedAt,
		CompletedAt:   e.CompletedAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (m *MissionMapper) ToEntities(models []*model.Mission) []*entity.Mission {
	entities := make([]*entity.Mission, 0, len(models))
	for _, mm := range models {
		entities = append(entities, m.ToEntity(mm))
	}
	return entities
}

type BucketMapper struct{}

func NewBucketMapper() *BucketMapper {
	return &BucketMapper{}
}

func (m *BucketMapper) ToEntity(b *model.Bucket) *entity.Bucket {
	if b == nil {
		return nil
	}
	return &entity.Bucket{
		Id:        b.Id,
		Slug:      entity.BucketSlug(b.Slug),
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
	}
}

func (m *BucketMapper) ToModel(e *entity.Bucket) *model.Bucket {
	if e == nil {
		return nil
	}
	return &model.Bucket{
		Id:        e.Id,
		Slug:      string(e.Slug),
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
	}
}

func (m *BucketMapper) ToEntities(models []*model.Bucket) []*entity.Bucket {
	entities := make([]*entity.Bucket, 0, len(models))
	for _, b := range models {
		entities = append(entities, m.ToEntity(b))
	}
	return entities
}

type AgentMapper struct{}

func NewAgentMapper() *AgentMapper {
	return &AgentMapper{}
}

func (m *AgentMapper) ToEntity(a *model.Agent) *entity.Agent {
	if a == nil {
		return nil
	}
	return &entity.Agent{
		Id:        a.Id,
		Name:      a.Name,
		Role:      a.Role,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AgentMapper) ToModel(e *entity.Agent) *model.Agent {
	if e == nil {
		return nil
	}
	return &model.Agent{
		Id:        e.Id,
		Name:      e.Name,
		Role:      e.Role,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
}

func (m *AgentMapper) ToEntities(models []*model.Agent) []*entity.Agent {
	entities := make([]*entity.Agent, 0, len(models))
	for _, a := range models {
		entities = append(entities, m.ToEntity(a))
	}
	return entities
}
