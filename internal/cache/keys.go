package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	GitHubReposKeyPrefix = "github:repos:%s"
)

const (
	UserTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// GitHubReposKey is case-insensitive since GitHub logins are.
func GitHubReposKey(username string) string {
	return fmt.Sprintf(GitHubReposKeyPrefix, strings.ToLower(username))
}

func (c *Cache) InvalidateUser(ctx context.Context, userID uint) {
	c.Invalidate(ctx, UserKey(userID))
}
