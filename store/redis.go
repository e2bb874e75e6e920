package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "authcore"

// createUserScript claims the email index entry and writes the record hash in
// one atomic step. Returns 0 when the email is already claimed.
const createUserScript = `
if redis.call("SETNX", KEYS[1], ARGV[1]) == 0 then
  return 0
end
redis.call("HSET", KEYS[2],
  "id", ARGV[1],
  "name", ARGV[2],
  "email", ARGV[3],
  "password_hash", ARGV[4],
  "avatar_url", ARGV[5],
  "created_at", ARGV[6])
return 1
`

var createUserLua = redis.NewScript(createUserScript)

// Redis is a [UserStore] backed by a Redis hash per user plus an email index
// key used to enforce uniqueness.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an existing client. The prefix namespaces all keys; when
// empty, "authcore" is used.
func NewRedis(client *redis.Client, prefix string) (*Redis, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &Redis{client: client, prefix: prefix}, nil
}

func (r *Redis) userKey(id string) string {
	return fmt.Sprintf("%s:user:%s", r.prefix, id)
}

func (r *Redis) emailKey(email string) string {
	return fmt.Sprintf("%s:email:%s", r.prefix, email)
}

// Create persists a new record, failing with [ErrDuplicateEmail] when the
// email index entry already exists. The claim and the record write happen in
// a single Lua script so concurrent registrations for the same email cannot
// both succeed.
func (r *Redis) Create(ctx context.Context, input CreateUserInput) (UserRecord, error) {
	record := UserRecord{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		AvatarURL:    input.AvatarURL,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	status, err := createUserLua.Run(ctx, r.client,
		[]string{r.emailKey(record.Email), r.userKey(record.ID)},
		record.ID,
		record.Name,
		record.Email,
		record.PasswordHash,
		record.AvatarURL,
		strconv.FormatInt(record.CreatedAt.Unix(), 10),
	).Int64()
	if err != nil {
		return UserRecord{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status == 0 {
		return UserRecord{}, ErrDuplicateEmail
	}

	return record, nil
}

// FindByEmail resolves the email index entry and loads the record hash.
func (r *Redis) FindByEmail(ctx context.Context, email string) (UserRecord, error) {
	id, err := r.client.Get(ctx, r.emailKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return UserRecord{}, ErrNotFound
	}
	if err != nil {
		return UserRecord{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return r.FindByID(ctx, id)
}

// FindByID loads the record hash for the given id.
func (r *Redis) FindByID(ctx context.Context, id string) (UserRecord, error) {
	fields, err := r.client.HGetAll(ctx, r.userKey(id)).Result()
	if err != nil {
		return UserRecord{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(fields) == 0 {
		return UserRecord{}, ErrNotFound
	}

	return recordFromFields(fields)
}

func recordFromFields(fields map[string]string) (UserRecord, error) {
	record := UserRecord{
		ID:           fields["id"],
		Name:         fields["name"],
		Email:        fields["email"],
		PasswordHash: fields["password_hash"],
		AvatarURL:    fields["avatar_url"],
	}
	if raw, ok := fields["created_at"]; ok {
		unix, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return UserRecord{}, fmt.Errorf("corrupt created_at field %q: %w", raw, err)
		}
		record.CreatedAt = time.Unix(unix, 0).UTC()
	}

	return record, nil
}
