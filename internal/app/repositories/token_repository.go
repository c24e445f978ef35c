package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/tpoportal/internal/pkg/logger"
)

// TokenRepository keeps revoked session token ids until they expire.
// It backs logout when Redis is not configured.
type TokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool, sb squirrel.StatementBuilderType) *TokenRepository {
	return &TokenRepository{db: db, sb: sb}
}

// Revoke records the token id as revoked until expiresAt
func (r *TokenRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	sql, args, err := r.sb.Insert("revoked_tokens").
		Columns("token_id", "expires_at").
		Values(tokenID, expiresAt).
		Suffix("ON CONFLICT (token_id) DO NOTHING").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building revoke token SQL")
		return fmt.Errorf("failed to build revoke token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("tokenID", tokenID).Msg("Error executing revoke token query")
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id was revoked and has not yet expired
func (r *TokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	sql, args, err := r.sb.Select("1").Prefix("SELECT EXISTS(").
		From("revoked_tokens").
		Where(squirrel.Eq{"token_id": tokenID}).
		Where(squirrel.Expr("expires_at > NOW()")).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build revoked token query: %w", err)
	}

	var revoked bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&revoked); err != nil {
		logger.Error().Err(err).Str("tokenID", tokenID).Msg("Error checking revoked token")
		return false, fmt.Errorf("error checking revoked token: %w", err)
	}
	return revoked, nil
}

// PurgeExpired deletes revoked entries whose tokens have expired anyway
func (r *TokenRepository) PurgeExpired(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Delete("revoked_tokens").Where(squirrel.Expr("expires_at <= NOW()")).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build purge tokens query: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error purging expired tokens")
		return 0, fmt.Errorf("error purging expired tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
