package models

// WorkerProfile — профиль исполнителя в объёме, нужном для рекомендаций:
// город, специальности и навыки.
type WorkerProfile struct {
	UserUID       string
	CityID        int
	SpecialityIDs []int
	Skills        []string
}

// HasSpeciality сообщает, заявлена ли у исполнителя специальность.
func (p *WorkerProfile) HasSpeciality(id int) bool {
	for _, s := range p.SpecialityIDs {
		if s == id {
			return true
		}
	}
	return false
}
