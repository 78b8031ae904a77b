package store

import "github.com/crewcall-bot/crewcall/internal/models"

type SaveInput struct {
	Snapshot *models.Snapshot
}
