package application

import (
	"github.com/sanosuguru/musicclub-api/internal/domain/concert"
	"github.com/sanosuguru/musicclub-api/internal/domain/resource"
)

// ConcertService はコンサートのユースケース
type ConcertService = ResourceService[concert.Concert, int64]

// NewConcertService は ConcertService を作成する
func NewConcertService(repo concert.Repository) *ConcertService {
	return NewResourceService(repo, Definition[concert.Concert, int64]{
		Resource: "concert",
		ParseKey: resource.ParseID,
		KeyOf:    (*concert.Concert).Key,
		Mask:     concert.Mask,
	})
}
