package synccommittee

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/serenitylabs/serenity/consensus-types/altair"
	types "github.com/serenitylabs/serenity/consensus-types/primitives"
)

// SaveSyncCommitteeMessage saves a sync committee message in the store.
// A validator may only have one message per (slot, block root), inserting a
// second one is rejected with ErrAlreadySigned.
func (s *Store) SaveSyncCommitteeMessage(msg *altair.SyncCommitteeMessage) error {
	if msg == nil {
		return errNilMessage
	}

	s.messageLock.Lock()
	defer s.messageLock.Unlock()

	copied := msg.Copy()
	messages, ok := s.messageCache[msg.Slot]
	if !ok {
		s.messageCache[msg.Slot] = []*altair.SyncCommitteeMessage{copied}
		savedSyncCommitteeMessageTotal.Inc()
		return nil
	}

	for _, m := range messages {
		if m.ValidatorIndex == msg.ValidatorIndex && bytes.Equal(m.BlockRoot, msg.BlockRoot) {
			return errors.Wrapf(altair.ErrAlreadySigned,
				"validator %d at slot %d", msg.ValidatorIndex, msg.Slot)
		}
	}

	s.messageCache[msg.Slot] = append(messages, copied)
	savedSyncCommitteeMessageTotal.Inc()
	return nil
}

// SyncCommitteeMessages returns sync committee messages by slot from the store.
// The returned messages are copies, callers are free to modify them.
func (s *Store) SyncCommitteeMessages(slot types.Slot) ([]*altair.SyncCommitteeMessage, error) {
	s.messageLock.RLock()
	defer s.messageLock.RUnlock()

	messages := make([]*altair.SyncCommitteeMessage, 0, len(s.messageCache[slot]))
	for _, m := range s.messageCache[slot] {
		messages = append(messages, m.Copy())
	}
	return messages, nil
}
