package store

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"peerlink/backend/internal/config"
	"peerlink/backend/internal/models"
)

func roomKey(roomCode string) string { return "room:" + roomCode }
func userRoomKey(user string) string { return "user_room:" + user }

// Service implements Store on Redis. The wait queue is a sorted set scored
// by enqueue time, room records are hashes with a whole-record expiry, and
// the reverse index is plain string keys with the same TTL.
type Service struct {
	Redis *redis.Client
	Ctx   context.Context
}

func NewService(rdb *redis.Client) *Service {
	return &Service{
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// EnqueueUser appends name to the wait queue. Re-registering an already
// queued name refreshes its score, keeping one entry per name.
func (s *Service) EnqueueUser(name string) error {
	return s.Redis.ZAdd(s.Ctx, config.MatchQueueKey, redis.Z{
		Score:  float64(time.Now().Unix()),
		Member: name,
	}).Err()
}

// RemoveFromQueue drops name from the wait queue if present.
func (s *Service) RemoveFromQueue(name string) error {
	return s.Redis.ZRem(s.Ctx, config.MatchQueueKey, name).Err()
}

func (s *Service) QueueLen() (int64, error) {
	return s.Redis.ZCard(s.Ctx, config.MatchQueueKey).Result()
}

// PopPair removes the two lowest-scored (longest-waiting) members in a
// single atomic pop. If the queue shrank below two since the caller's length
// check, the lone popped member is put back at its original score and
// ErrNotEnoughQueued is returned.
func (s *Service) PopPair() (string, string, error) {
	popped, err := s.Redis.ZPopMin(s.Ctx, config.MatchQueueKey, 2).Result()
	if err != nil {
		return "", "", err
	}
	if len(popped) < 2 {
		for _, z := range popped {
			if err := s.Redis.ZAdd(s.Ctx, config.MatchQueueKey, z).Err(); err != nil {
				log.Printf("Error requeueing %v after short pop: %v", z.Member, err)
			}
		}
		return "", "", ErrNotEnoughQueued
	}
	return popped[0].Member.(string), popped[1].Member.(string), nil
}

func (s *Service) SaveRoom(roomCode, initiator, responder string) error {
	key := roomKey(roomCode)

	if err := s.Redis.HSet(s.Ctx, key, initiator, models.RoleInitiator, responder, models.RoleResponder).Err(); err != nil {
		return err
	}
	if err := s.Redis.Expire(s.Ctx, key, config.RoomTTL).Err(); err != nil {
		return err
	}

	if err := s.Redis.Set(s.Ctx, userRoomKey(initiator), roomCode, config.RoomTTL).Err(); err != nil {
		return err
	}
	return s.Redis.Set(s.Ctx, userRoomKey(responder), roomCode, config.RoomTTL).Err()
}

func (s *Service) RoomExists(roomCode string) (bool, error) {
	n, err := s.Redis.Exists(s.Ctx, roomKey(roomCode)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Service) GetRole(roomCode, user string) (string, error) {
	role, err := s.Redis.HGet(s.Ctx, roomKey(roomCode), user).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

func (s *Service) GetRoom(roomCode string) (map[string]string, error) {
	return s.Redis.HGetAll(s.Ctx, roomKey(roomCode)).Result()
}

func (s *Service) RoomForUser(user string) (string, error) {
	roomCode, err := s.Redis.Get(s.Ctx, userRoomKey(user)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return roomCode, nil
}

func (s *Service) DeleteRoom(roomCode string, members []string) error {
	keys := []string{roomKey(roomCode)}
	for _, m := range members {
		keys = append(keys, userRoomKey(m))
	}
	return s.Redis.Del(s.Ctx, keys...).Err()
}
