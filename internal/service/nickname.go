package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	nicknamePrefix   = "user_"
	nicknameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	shortSuffixLen   = 8
	shortSuffixTries = 20
	longSuffixLen    = 12
)

// NicknameChecker reports whether a nickname is held by a profile whose owner
// is not excludeUserID. repo.ProfileRepo satisfies it.
type NicknameChecker interface {
	NicknameTaken(ctx context.Context, nickname, excludeUserID string) (bool, error)
}

// NicknameAllocator hands out placeholder nicknames for new profiles.
//
// The check here only narrows the window: the profiles table carries a unique
// constraint, and callers retry with a fresh nickname when an insert loses.
type NicknameAllocator struct {
	checker NicknameChecker
}

// NewNicknameAllocator constructs a NicknameAllocator that checks availability with c.
func NewNicknameAllocator(c NicknameChecker) *NicknameAllocator {
	return &NicknameAllocator{checker: c}
}

// Allocate returns a nickname of the form user_xxxxxxxx that no profile holds.
// After twenty collisions it switches to a twelve-character suffix and keeps
// trying until it succeeds or ctx is done.
func (a *NicknameAllocator) Allocate(ctx context.Context) (string, error) {
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("service.NicknameAllocator.Allocate: %w", err)
		}

		n := shortSuffixLen
		if attempt >= shortSuffixTries {
			n = longSuffixLen
		}
		suffix, err := randomSuffix(n)
		if err != nil {
			return "", fmt.Errorf("service.NicknameAllocator.Allocate: %w", err)
		}

		candidate := nicknamePrefix + suffix
		taken, err := a.checker.NicknameTaken(ctx, candidate, "")
		if err != nil {
			return "", fmt.Errorf("service.NicknameAllocator.Allocate: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
}

// TakenByOther reports whether nickname belongs to a profile not owned by
// userID, so a user can always keep their current nickname.
func (a *NicknameAllocator) TakenByOther(ctx context.Context, nickname, userID string) (bool, error) {
	taken, err := a.checker.NicknameTaken(ctx, nickname, userID)
	if err != nil {
		return false, fmt.Errorf("service.NicknameAllocator.TakenByOther: %w", err)
	}
	return taken, nil
}

// randomSuffix draws n characters uniformly from nicknameAlphabet.
func randomSuffix(n int) (string, error) {
	base := big.NewInt(int64(len(nicknameAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", err
		}
		b[i] = nicknameAlphabet[idx.Int64()]
	}
	return string(b), nil
}
