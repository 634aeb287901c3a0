package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// EmailSender delivers OTP codes. Delivery is an external collaborator; the
// engine only generates and checks codes.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// OTPService stores one-time codes in redis with an explicit expiry, so no
// process-wide mutable map is involved.
type OTPService struct {
	rdb    *redis.Client
	sender EmailSender
	ttl    time.Duration
}

func NewOTPService(rdb *redis.Client, sender EmailSender, ttl time.Duration) *OTPService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &OTPService{rdb: rdb, sender: sender, ttl: ttl}
}

// Issue generates a 6-digit code for the email, stores it with TTL and hands
// it to the sender.
func (s *OTPService) Issue(ctx context.Context, email string) error {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return err
	}
	code := fmt.Sprintf("%06d", n.Int64())
	if err := s.rdb.Set(ctx, otpKey(email), code, s.ttl).Err(); err != nil {
		return err
	}
	if s.sender != nil {
		return s.sender.Send(ctx, email, "Your PenFolio verification code", "Your OTP is "+code)
	}
	return nil
}

// Verify consumes the code. A wrong or expired code leaves nothing behind to
// retry against once the TTL lapses.
func (s *OTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, otpKey(email)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}
	_ = s.rdb.Del(ctx, otpKey(email)).Err()
	return true, nil
}

func otpKey(email string) string { return "otp:" + email }
