//go:generate go run go.uber.org/mock/mockgen -source=thread.go -destination=../mocks/mock_thread_repository.go -package=mocks
package repositories

import (
	"aptiq-relay/domain"
	"aptiq-relay/errors"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const threadPrefix = "thread:"

// IThreadRepository is the ledger of the conversation threads opened by the relay.
// It is audit data only: thread ownership is decided by the thread name.
type IThreadRepository interface {
	Save(thread domain.ConversationThread) error
	Get(id string) (domain.ConversationThread, error)
	IncrementFollowUps(id string) (int, error)
	List() ([]domain.ConversationThread, error)
}

type ThreadRepository struct {
	db *badger.DB
}

func NewThreadRepository(db *badger.DB) IThreadRepository {
	return &ThreadRepository{db: db}
}

// DiskThread is the stored form of a conversation thread.
// No prompt or reply text is ever stored.
type DiskThread struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ParentChannelID string `json:"parent_channel_id"`
	StarterID       string `json:"starter_id"`
	RequestedBy     string `json:"requested_by"`
	CreatedAt       int64  `json:"created_at"`
	FollowUps       int    `json:"follow_ups"`
}

// Save stores the thread under "thread:{id}", replacing any previous record.
func (r *ThreadRepository) Save(thread domain.ConversationThread) error {
	data, err := json.Marshal(fromConversationThread(thread))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(threadKey(thread.ID), data)
	})
}

func (r *ThreadRepository) Get(id string) (domain.ConversationThread, error) {
	var disk DiskThread
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		disk, err = readThread(txn, id)
		return err
	})
	if err != nil {
		return domain.ConversationThread{}, err
	}
	return toConversationThread(disk), nil
}

// IncrementFollowUps bumps the follow-up counter of a thread and returns the new value.
// Threads opened before the ledger existed are reported as errors.ErrThreadNotFound.
func (r *ThreadRepository) IncrementFollowUps(id string) (int, error) {
	var count int
	err := r.db.Update(func(txn *badger.Txn) error {
		disk, err := readThread(txn, id)
		if err != nil {
			return err
		}
		disk.FollowUps++
		count = disk.FollowUps
		data, err := json.Marshal(disk)
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(threadKey(id), data)
	})
	return count, err
}

// List returns every recorded thread, ordered by key.
func (r *ThreadRepository) List() ([]domain.ConversationThread, error) {
	var threads []domain.ConversationThread
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(threadPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var disk DiskThread
				if err := json.Unmarshal(val, &disk); err != nil {
					return err
				}
				threads = append(threads, toConversationThread(disk))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return threads, err
}

func readThread(txn *badger.Txn, id string) (DiskThread, error) {
	var disk DiskThread
	item, err := txn.Get(threadKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return disk, errors.ErrThreadNotFound
	}
	if err != nil {
		return disk, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &disk)
	})
	return disk, err
}

func threadKey(id string) []byte {
	return []byte(threadPrefix + id)
}

func fromConversationThread(t domain.ConversationThread) DiskThread {
	return DiskThread{
		ID:              t.ID,
		Name:            t.Name,
		ParentChannelID: t.ParentChannelID,
		StarterID:       t.StarterID,
		RequestedBy:     t.RequestedBy,
		CreatedAt:       t.CreatedAt.UnixNano(),
		FollowUps:       t.FollowUps,
	}
}

func toConversationThread(d DiskThread) domain.ConversationThread {
	return domain.ConversationThread{
		ID:              d.ID,
		Name:            d.Name,
		ParentChannelID: d.ParentChannelID,
		StarterID:       d.StarterID,
		RequestedBy:     d.RequestedBy,
		CreatedAt:       time.Unix(0, d.CreatedAt).UTC(),
		FollowUps:       d.FollowUps,
	}
}
