package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Justlrnal4/golf-group-organizer/storage"
)

// VoteEvent is published after every successful vote write so UI layers can
// refresh tallies without polling. Consumers must tolerate lag; the row in
// the database is always the source of truth.
type VoteEvent struct {
	OutingID      uint   `json:"outingID"`
	PlanCardID    uint   `json:"planCardID"`
	ParticipantID uint   `json:"participantID"`
	Vote          string `json:"vote"`
	UpCount       int64  `json:"upCount"`
	DownCount     int64  `json:"downCount"`
}

// VoteEventService publishes vote events on a per-outing redis channel.
type VoteEventService struct{}

func NewVoteEventService() *VoteEventService {
	return &VoteEventService{}
}

// Publish is fire-and-forget: a dead redis never fails the vote itself.
func (ves *VoteEventService) Publish(event VoteEvent) {
	if storage.Redis == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("vote event marshal failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	channel := fmt.Sprintf("outing:%d:votes", event.OutingID)
	if err := storage.Redis.Publish(ctx, channel, payload).Err(); err != nil {
		log.Printf("vote event publish to %s failed: %v", channel, err)
	}
}
