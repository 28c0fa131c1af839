package mapper

import (
	"encoding/json"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/model"

	"gorm.io/datatypes"
)

type DebateMessageMapper struct{}

func NewDebateMessageMapper() *DebateMessageMapper {
	return &DebateMessageMapper{}
}

func (m *DebateMessageMapper) ToEntity(mm *model.DebateMessage) *entity.DebateMessage {
	if mm == nil {
		return nil
	}
	return &entity.DebateMessage{
		Id:          mm.Id,
		MissionId:   mm.MissionId,
		AgentId:     mm.AgentId,
		RoundNumber: mm.RoundNumber,
		Lane:        entity.Lane(mm.Lane),
		Content:     mm.Content,
		CreatedAt:   mm.CreatedAt,
	}
}

func (m *DebateMessageMapper) ToModel(e *entity.DebateMessage) *model.DebateMessage {
	if e == nil {
		return nil
	}
	return &model.DebateMessage{
		Id:          e.Id,
		MissionId:   e.MissionId,
		AgentId:     e.AgentId,
		RoundNumber: e.RoundNumber,
		Lane:        string(e.Lane),
		Content:     e.Content,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *DebateMessageMapper) ToEntities(models []*model.DebateMessage) []*entity.DebateMessage {
	entities := make([]*entity.DebateMessage, 0, len(models))
	for _, mm := range models {
		entities = append(entities, m.ToEntity(mm))
	}
	return entities
}

type ClaimMapper struct{}

func NewClaimMapper() *ClaimMapper {
	return &ClaimMapper{}
}

func (m *ClaimMapper) ToEntity(c *model.Claim) *entity.Claim {
	if c == nil {
		return nil
	}
	return &entity.Claim{
		Id:          c.Id,
		MissionId:   c.MissionId,
		MessageId:   c.MessageId,
		ClaimText:   c.ClaimText,
		ClaimType:   entity.ClaimType(c.ClaimType),
		Confidence:  c.Confidence,
		IsFlagged:   c.IsFlagged,
		IsRetracted: c.IsRetracted,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *ClaimMapper) ToModel(e *entity.Claim) *model.Claim {
	if e == nil {
		return nil
	}
	return &model.Claim{
		Id:          e.Id,
		MissionId:   e.MissionId,
		MessageId:   e.MessageId,
		ClaimText:   e.ClaimText,
		ClaimType:   string(e.ClaimType),
		Confidence:  e.Confidence,
		IsFlagged:   e.IsFlagged,
		IsRetracted: e.IsRetracted,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ClaimMapper) ToEntities(models []*model.Claim) []*entity.Claim {
	entities := make([]*entity.Claim, 0, len(models))
	for _, c := range models {
		entities = append(entities, m.ToEntity(c))
	}
	return entities
}

type CitationMapper struct{}

func NewCitationMapper() *CitationMapper {
	return &CitationMapper{}
}

func (m *CitationMapper) ToEntity(c *model.Citation) *entity.Citation {
	if c == nil {
		return nil
	}
	return &entity.Citation{
		Id:           c.Id,
		ClaimId:      c.ClaimId,
		SourceId:     c.SourceId,
		Snippet:      c.Snippet,
		WhyItMatters: c.WhyItMatters,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *CitationMapper) ToModel(e *entity.Citation) *model.Citation {
	if e == nil {
		return nil
	}
	return &model.Citation{
		Id:           e.Id,
		ClaimId:      e.ClaimId,
		SourceId:     e.SourceId,
		Snippet:      e.Snippet,
		WhyItMatters: e.WhyItMatters,
		CreatedAt:    e.CreatedAt,
	}
}

func (m *CitationMapper) ToEntities(models []*model.Citation) []*entity.Citation {
	entities := make([]*entity.Citation, 0, len(models))
	for _, c := range models {
		entities = append(entities, m.ToEntity(c))
	}
	return entities
}

type SourceMapper struct{}

func NewSourceMapper() *SourceMapper {
	return &SourceMapper{}
}

func (m *SourceMapper) ToEntity(s *model.Source) *entity.Source {
	if s == nil {
		return nil
	}
	publisher := ""
	if len(s.Metadata) > 0 {
		var meta map[string]string
		if err := json.Unmarshal(s.Metadata, &meta); err == nil {
			publisher = meta["publisher"]
		}
	}
	return &entity.Source{
		Id:           s.Id,
		SourcePackId: s.SourcePackId,
		Title:        s.Title,
		URL:          s.URL,
		SourceType:   s.SourceType,
		Publisher:    publisher,
		CreatedAt:    s.CreatedAt,
	}
}

func (m *SourceMapper) ToModel(e *entity.Source) *model.Source {
	if e == nil {
		return nil
	}
	var meta datatypes.JSON
	if e.Publisher != "" {
		raw, _ := json.Marshal(map[string]string{"publisher": e.Publisher})
		meta = datatypes.JSON(raw)
	}
	return &model.Source{
		Id:           e.Id,
		SourcePackId: e.SourcePackId,
		Title:        e.Title,
		URL:          e.URL,
		SourceType:   e.SourceType,
		Metadata:     meta,
		CreatedAt:    e.CreatedAt,
	}
}

func (m *SourceMapper) ToEntities(models []*model.Source) []*entity.Source {
	entities := make([]*entity.Source, 0, len(models))
	for _, s := range models {
		entities = append(entities, m.ToEntity(s))
	}
	return entities
}

type SourcePackMapper struct{}

func NewSourcePackMapper() *SourcePackMapper {
	return &SourcePackMapper{}
}

func (m *SourcePackMapper) ToEntity(p *model.SourcePack) *entity.SourcePack {
	if p == nil {
		return nil
	}
	return &entity.SourcePack{
		Id:          p.Id,
		BucketId:    p.BucketId,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *SourcePackMapper) ToModel(e *entity.SourcePack) *model.SourcePack {
	if e == nil {
		return nil
	}
	return &model.SourcePack{
		Id:          e.Id,
		BucketId:    e.BucketId,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
