package domain

import (
	"fmt"
	"strings"
	"time"
)

// Schedule é um agendamento: um cliente, um pet desse cliente e um ou mais serviços.
type Schedule struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	PetID        string    `json:"pet_id"`
	ServiceIDs   []string  `json:"service_ids"`
	DateSchedule time.Time `json:"date_schedule"`
}

// SchedulePatch é a atualização parcial de um agendamento.
// ServiceIDs nil significa "não informado"; uma lista vazia é rejeitada pelo serviço.
type SchedulePatch struct {
	PetID        *string
	ServiceIDs   []string
	DateSchedule *time.Time
}

func (p SchedulePatch) IsEmpty() bool {
	return p.PetID == nil && p.ServiceIDs == nil && p.DateSchedule == nil
}

func (p SchedulePatch) Apply(s Schedule) Schedule {
	if p.PetID != nil {
		s.PetID = *p.PetID
	}
	if p.ServiceIDs != nil {
		s.ServiceIDs = append([]string(nil), p.ServiceIDs...)
	}
	if p.DateSchedule != nil {
		s.DateSchedule = p.DateSchedule.UTC()
	}
	return s
}

// ScheduleRequest é o payload de criação de agendamento.
type ScheduleRequest struct {
	ClientID     string   `json:"client_id" validate:"required"`
	PetID        string   `json:"pet_id" validate:"required"`
	ServiceIDs   []string `json:"service_ids" validate:"required,min=1"`
	DateSchedule string   `json:"date_schedule" validate:"required" example:"2024-12-05T10:00:00Z"`
}

// ToSchedule converte o payload, interpretando a data.
func (r ScheduleRequest) ToSchedule() (Schedule, error) {
	date, err := ParseScheduleDate(r.DateSchedule)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{
		ClientID:     r.ClientID,
		PetID:        r.PetID,
		ServiceIDs:   append([]string(nil), r.ServiceIDs...),
		DateSchedule: date,
	}, nil
}

// SchedulePatchRequest é o payload de atualização parcial de agendamento.
type SchedulePatchRequest struct {
	PetID        *string  `json:"pet_id,omitempty"`
	ServiceIDs   []string `json:"service_ids,omitempty"`
	DateSchedule *string  `json:"date_schedule,omitempty" example:"2024-12-05T10:00:00Z"`
}

// ToPatch converte o payload, interpretando a data quando presente.
func (r SchedulePatchRequest) ToPatch() (SchedulePatch, error) {
	patch := SchedulePatch{PetID: r.PetID, ServiceIDs: r.ServiceIDs}
	if r.DateSchedule != nil {
		date, err := ParseScheduleDate(*r.DateSchedule)
		if err != nil {
			return SchedulePatch{}, err
		}
		patch.DateSchedule = &date
	}
	return patch, nil
}

var scheduleDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseScheduleDate aceita RFC 3339 e, sem fuso, assume UTC.
func ParseScheduleDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range scheduleDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("data '%s' fora do formato ISO-8601", value)
}
