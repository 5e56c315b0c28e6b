package domain

// ScheduleDetail é a visão composta de um agendamento: cliente, pet e serviços resolvidos.
type ScheduleDetail struct {
	ID           string    `json:"id"`
	DateSchedule string    `json:"date_schedule" example:"2024-12-05T10:00:00Z"`
	Client       Client    `json:"client"`
	Pet          Pet       `json:"pet"`
	Services     []Service `json:"services"`
}

// ClientScheduleTotal é uma linha do relatório de agendamentos por cliente.
type ClientScheduleTotal struct {
	ClientID       string `json:"client_id"`
	ClientName     string `json:"client_name"`
	TotalSchedules int64  `json:"total_schedules"`
}

// ScheduleCount é a resposta do total de agendamentos.
type ScheduleCount struct {
	TotalSchedules int64 `json:"total_schedules"`
}

// ServiceCount é a resposta do total de serviços.
type ServiceCount struct {
	TotalServices int64 `json:"total_services"`
}
