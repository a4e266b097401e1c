package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/warblehq/warble/internal/core/domain"
	"github.com/warblehq/warble/internal/core/ports"
)

// Postgres error codes translated into domain sentinels.
const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
	pgCheckViolation  = "23514"
)

// edgeTable maps an edge kind to its table. missingTarget is the sentinel
// returned when the FK on the target side fails, i.e. the liked tweet or
// followed user does not exist.
type edgeTable struct {
	name          string
	actorCol      string
	targetCol     string
	missingTarget error
}

var edgeTables = map[domain.EdgeKind]edgeTable{
	domain.EdgeLike:    {"likes", "user_id", "tweet_id", domain.ErrTweetNotFound},
	domain.EdgeRetweet: {"retweets", "user_id", "tweet_id", domain.ErrTweetNotFound},
	domain.EdgeFollow:  {"follows", "follower_id", "following_id", domain.ErrUserNotFound},
}

// PostgresStore implements the user, tweet and engagement repository ports
// on a pgx pool. Every edge mutation is a single conditional statement, so
// the store's constraints make the toggle flip atomic.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: pool}
}

// --- users ---

func (s *PostgresStore) SaveUser(ctx context.Context, user *domain.User) error {
	q := `
		INSERT INTO users (id, email, username, display_name, bio, avatar, password_hash, created_at, updated_at)
		VALUES (@id, @email, @username, @display_name, @bio, @avatar, @password_hash, @created_at, @updated_at)
	`
	args := pgx.NamedArgs{
		"id":            user.ID,
		"email":         user.Email,
		"username":      user.Username,
		"display_name":  user.DisplayName,
		"bio":           user.Bio,
		"avatar":        user.Avatar,
		"password_hash": user.PasswordHash,
		"created_at":    user.CreatedAt,
		"updated_at":    user.UpdatedAt,
	}
	if _, err := s.db.Exec(ctx, q, args); err != nil {
		return translateUserError(err)
	}
	return nil
}

func (s *PostgresStore) UpdateUser(ctx context.Context, user *domain.User) error {
	q := `
		UPDATE users
		SET display_name = @display_name, bio = @bio, avatar = @avatar, updated_at = @updated_at
		WHERE id = @id
	`
	args := pgx.NamedArgs{
		"id":           user.ID,
		"display_name": user.DisplayName,
		"bio":          user.Bio,
		"avatar":       user.Avatar,
		"updated_at":   user.UpdatedAt,
	}
	tag, err := s.db.Exec(ctx, q, args)
	if err != nil {
		return translateUserError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

const userColumns = `id, email, username, display_name, bio, avatar, password_hash, created_at, updated_at`

func (s *PostgresStore) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *PostgresStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (s *PostgresStore) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (s *PostgresStore) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.DisplayName, &u.Bio, &u.Avatar, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("db: scan user: %w", err)
	}
	return &u, nil
}

// --- tweets ---

func (s *PostgresStore) SaveTweet(ctx context.Context, tweet *domain.Tweet) error {
	q := `
		INSERT INTO tweets (id, author_id, content, created_at)
		VALUES (@id, @author_id, @content, @created_at)
	`
	args := pgx.NamedArgs{
		"id":         tweet.ID,
		"author_id":  tweet.Author.ID,
		"content":    tweet.Content,
		"created_at": tweet.CreatedAt,
	}
	if _, err := s.db.Exec(ctx, q, args); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("db: save tweet: %w", err)
	}
	return nil
}

// ListTweets orders by created_at, then by the insertion sequence so the
// order stays total when timestamps collide.
func (s *PostgresStore) ListTweets(ctx context.Context, filter ports.TweetFilter) ([]domain.Tweet, error) {
	q := `
		SELECT t.id, t.content, t.created_at, u.id, u.username, u.display_name, u.avatar
		FROM tweets t
		JOIN users u ON u.id = t.author_id
	`
	var args []any
	if filter.AuthorID != "" {
		q += ` WHERE t.author_id = $1`
		args = append(args, filter.AuthorID)
	}
	q += ` ORDER BY t.created_at DESC, t.seq DESC`

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("db: list tweets: %w", err)
	}
	defer rows.Close()

	var tweets []domain.Tweet
	for rows.Next() {
		var t domain.Tweet
		if err := rows.Scan(&t.ID, &t.Content, &t.CreatedAt,
			&t.Author.ID, &t.Author.Username, &t.Author.DisplayName, &t.Author.Avatar); err != nil {
			return nil, fmt.Errorf("db: scan tweet: %w", err)
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}

func (s *PostgresStore) CountTweetsByAuthor(ctx context.Context, authorID string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM tweets WHERE author_id = $1`, authorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db: count tweets: %w", err)
	}
	return n, nil
}

// --- edges ---

func (s *PostgresStore) CreateEdge(ctx context.Context, kind domain.EdgeKind, actorID, targetID string) error {
	t := edgeTables[kind]
	q := fmt.Sprintf(`INSERT INTO %s (%s, %s, created_at) VALUES ($1, $2, now())`, t.name, t.actorCol, t.targetCol)

	if _, err := s.db.Exec(ctx, q, actorID, targetID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return domain.ErrEdgeExists
			case pgFKViolation:
				return t.missingTarget
			case pgCheckViolation:
				return domain.ErrSelfFollow
			}
		}
		return fmt.Errorf("db: create %s edge: %w", kind, err)
	}
	return nil
}

func (s *PostgresStore) DeleteEdge(ctx context.Context, kind domain.EdgeKind, actorID, targetID string) error {
	t := edgeTables[kind]
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, t.name, t.actorCol, t.targetCol)

	tag, err := s.db.Exec(ctx, q, actorID, targetID)
	if err != nil {
		return fmt.Errorf("db: delete %s edge: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEdgeNotFound
	}
	return nil
}

func (s *PostgresStore) EdgeExists(ctx context.Context, kind domain.EdgeKind, actorID, targetID string) (bool, error) {
	t := edgeTables[kind]
	q := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`, t.name, t.actorCol, t.targetCol)

	var exists bool
	if err := s.db.QueryRow(ctx, q, actorID, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db: %s edge exists: %w", kind, err)
	}
	return exists, nil
}

func (s *PostgresStore) CountEdgesByTarget(ctx context.Context, kind domain.EdgeKind, targetID string) (int, error) {
	t := edgeTables[kind]
	return s.countEdges(ctx, t.name, t.targetCol, targetID)
}

func (s *PostgresStore) CountEdgesByActor(ctx context.Context, kind domain.EdgeKind, actorID string) (int, error) {
	t := edgeTables[kind]
	return s.countEdges(ctx, t.name, t.actorCol, actorID)
}

func (s *PostgresStore) countEdges(ctx context.Context, table, col, id string) (int, error) {
	var n int
	q := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, table, col)
	if err := s.db.QueryRow(ctx, q, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("db: count %s: %w", table, err)
	}
	return n, nil
}

// --- helpers ---

func translateUserError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case "users_username_key":
			return domain.ErrUsernameTaken
		default:
			return domain.ErrEmailTaken
		}
	}
	return fmt.Errorf("db: save user: %w", err)
}
