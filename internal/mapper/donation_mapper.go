package mapper

import (
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/model"
)

type DonationMapper struct{}

func NewDonationMapper() *DonationMapper {
	return &DonationMapper{}
}

func (m *DonationMapper) IntentToEntity(i *model.DonationIntent) *entity.DonationIntent {
	if i == nil {
		return nil
	}
	return &entity.DonationIntent{
		Id:            i.Id,
		Method:        i.Method,
		AmountCents:   i.AmountCents,
		PagePath:      i.PagePath,
		DonorEmail:    i.DonorEmail,
		UserAgentHash: i.UserAgentHash,
		IpHash:        i.IpHash,
		Status:        entity.DonationIntentStatus(i.Status),
		OrderId:       i.OrderId,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (m *DonationMapper) IntentToModel(e *entity.DonationIntent) *model.DonationIntent {
	if e == nil {
		return nil
	}
	return &model.DonationIntent{
		Id:            e.Id,
		Method:        e.Method,
		AmountCents:   e.AmountCents,
		PagePath:      e.PagePath,
		DonorEmail:    e.DonorEmail,
		UserAgentHash: e.UserAgentHash,
		IpHash:        e.IpHash,
		Status:        string(e.Status),
		OrderId:       e.OrderId,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (m *DonationMapper) EventToEntity(ev *model.DonationEvent) *entity.DonationEvent {
	if ev == nil {
		return nil
	}
	return &entity.DonationEvent{
		Id:              ev.Id,
		Provider:        ev.Provider,
		ProviderEventId: ev.ProviderEventId,
		OrderId:         ev.OrderId,
		AmountCents:     ev.AmountCents,
		Currency:        ev.Currency,
		PaymentStatus:   ev.PaymentStatus,
		CreatedAt:       ev.CreatedAt,
	}
}

func (m *DonationMapper) EventToModel(e *entity.DonationEvent) *model.DonationEvent {
	if e == nil {
		return nil
	}
	return &model.DonationEvent{
		Id:              e.Id,
		Provider:        e.Provider,
		ProviderEventId: e.ProviderEventId,
		OrderId:         e.OrderId,
		AmountCents:     e.AmountCents,
		Currency:        e.Currency,
		PaymentStatus:   e.PaymentStatus,
		CreatedAt:       e.CreatedAt,
	}
}

type AdminUserMapper struct{}

func NewAdminUserMapper() *AdminUserMapper {
	return &AdminUserMapper{}
}

func (m *AdminUserMapper) ToEntity(a *model.AdminUser) *entity.AdminUser {
	if a == nil {
		return nil
	}
	return &entity.AdminUser{
		Id:           a.Id,
		Email:        a.Email,
		FullName:     a.FullName,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *AdminUserMapper) ToModel(e *entity.AdminUser) *model.AdminUser {
	if e == nil {
		return nil
	}
	return &model.AdminUser{
		Id:           e.Id,
		Email:        e.Email,
		FullName:     e.FullName,
		PasswordHash: e.PasswordHash,
		Role:         e.Role,
		CreatedAt:    e.CreatedAt,
	}
}
