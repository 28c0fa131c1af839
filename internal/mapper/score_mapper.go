package mapper

import (
	"encoding/json"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/model"

	"gorm.io/datatypes"
)

func toJSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}

func fromJSONList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

type ScoreMapper struct{}

func NewScoreMapper() *ScoreMapper {
	return &ScoreMapper{}
}

func (m *ScoreMapper) ToEntity(s *model.Score) *entity.Score {
	if s == nil {
		return nil
	}
	return &entity.Score{
		Id:                 s.Id,
		MissionId:          s.MissionId,
		EvidenceScore:      s.EvidenceScore,
		ActionabilityScore: s.ActionabilityScore,
		RiskScore:          s.RiskScore,
		ClarityScore:       s.ClarityScore,
		OverallScore:       s.OverallScore,
		CitationCoverage:   s.CitationCoverage,
		FlaggedClaimRate:   s.FlaggedClaimRate,
		RevisionCount:      s.RevisionCount,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func (m *ScoreMapper) ToModel(e *entity.Score) *model.Score {
	if e == nil {
		return nil
	}
	return &model.Score{
		Id:                 e.Id,
		MissionId:          e.MissionId,
		EvidenceScore:      e.EvidenceScore,
		ActionabilityScore: e.ActionabilityScore,
		RiskScore:          e.RiskScore,
		ClarityScore:       e.ClarityScore,
		OverallScore:       e.OverallScore,
		CitationCoverage:   e.CitationCoverage,
		FlaggedClaimRate:   e.FlaggedClaimRate,
		RevisionCount:      e.RevisionCount,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

type SolutionCardMapper struct{}

func NewSolutionCardMapper() *SolutionCardMapper {
	return &SolutionCardMapper{}
}

func (m *SolutionCardMapper) ToEntity(c *model.SolutionCard) *entity.SolutionCard {
	if c == nil {
		return nil
	}
	return &entity.SolutionCard{
		Id:                     c.Id,
		MissionId:              c.MissionId,
		Title:                  c.Title,
		Summary:                c.Summary,
		Content:                c.Content,
		IntendedOwner:          c.IntendedOwner,
		Timeline:               c.Timeline,
		CostBand:               c.CostBand,
		StaffingAssumptions:    c.StaffingAssumptions,
		RisksMitigations:       c.RisksMitigations,
		SuccessMetrics:         fromJSONList(c.SuccessMetrics),
		DecisionSummary:        c.DecisionSummary,
		WhyThisOverAlternative: c.WhyThisOverAlternative,
		ImplementationSteps:    fromJSONList(c.ImplementationSteps),
		First30DaysPlan:        c.First30DaysPlan,
		IsPublished:            c.IsPublished,
		CreatedAt:              c.CreatedAt,
	}
}

func (m *SolutionCardMapper) ToModel(e *entity.SolutionCard) *model.SolutionCard {
	if e == nil {
		return nil
	}
	return &model.SolutionCard{
		Id:                     e.Id,
		MissionId:              e.MissionId,
		Title:                  e.Title,
		Summary:                e.Summary,
		Content:                e.Content,
		IntendedOwner:          e.IntendedOwner,
		Timeline:               e.Timeline,
		CostBand:               e.CostBand,
		StaffingAssumptions:    e.StaffingAssumptions,
		RisksMitigations:       e.RisksMitigations,
		SuccessMetrics:         toJSONList(e.SuccessMetrics),
		DecisionSummary:        e.DecisionSummary,
		WhyThisOverAlternative: e.WhyThisOverAlternative,
		ImplementationSteps:    toJSONList(e.ImplementationSteps),
		First30DaysPlan:        e.First30DaysPlan,
		IsPublished:            e.IsPublished,
		CreatedAt:              e.CreatedAt,
	}
}

type DebateStatsMapper struct{}

func NewDebateStatsMapper() *DebateStatsMapper {
	return &DebateStatsMapper{}
}

func (m *DebateStatsMapper) ToEntity(s *model.DebateStats) *entity.DebateStats {
	if s == nil {
		return nil
	}
	return &entity.DebateStats{
		Id:               s.Id,
		MissionId:        s.MissionId,
		LastMessageAt:    s.LastMessageAt,
		MessagesLastHour: s.MessagesLastHour,
		ClaimsCount:      s.ClaimsCount,
		CitationCoverage: s.CitationCoverage,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (m *DebateStatsMapper) ToModel(e *entity.DebateStats) *model.DebateStats {
	if e == nil {
		return nil
	}
	return &model.DebateStats{
		Id:               e.Id,
		MissionId:        e.MissionId,
		LastMessageAt:    e.LastMessageAt,
		MessagesLastHour: e.MessagesLastHour,
		ClaimsCount:      e.ClaimsCount,
		CitationCoverage: e.CitationCoverage,
		UpdatedAt:        e.UpdatedAt,
	}
}
