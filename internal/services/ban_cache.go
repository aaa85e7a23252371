package services

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const bannedUsersKey = "banned_users"

// BanCache keeps the set of banned user ids in redis so the auth middleware
// can reject banned accounts without a DB round trip on every request.
type BanCache struct {
	RDB *redis.Client
}

func (c *BanCache) Ban(ctx context.Context, userID int) error {
	return c.RDB.SAdd(ctx, bannedUsersKey, strconv.Itoa(userID)).Err()
}

func (c *BanCache) Unban(ctx context.Context, userID int) error {
	return c.RDB.SRem(ctx, bannedUsersKey, strconv.Itoa(userID)).Err()
}

func (c *BanCache) IsBanned(ctx context.Context, userID int) (bool, error) {
	return c.RDB.SIsMember(ctx, bannedUsersKey, strconv.Itoa(userID)).Result()
}

// Warm loads the current banned set from the users table into redis.
// Called once at startup.
func (c *BanCache) Warm(ctx context.Context, userIDs []int) error {
	if len(userIDs) == 0 {
		return nil
	}
	members := make([]interface{}, 0, len(userIDs))
	for _, id := range userIDs {
		members = append(members, strconv.Itoa(id))
	}
	return c.RDB.SAdd(ctx, bannedUsersKey, members...).Err()
}
