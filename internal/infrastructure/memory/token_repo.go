package memory

import (
	"time"

	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"
)

type tokenRepo struct {
	s *Store
}

func (r *tokenRepo) GetOrCreate(userID, key string) (*entity.Token, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.tokens[userID]; ok {
		cp := *existing
		return &cp, false, nil
	}
	tok := &entity.Token{Key: key, UserID: userID, CreatedAt: time.Now()}
	r.s.tokens[userID] = tok
	cp := *tok
	return &cp, true, nil
}

func (r *tokenRepo) FindUserByKey(key string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for userID, tok := range r.s.tokens {
		if tok.Key == key {
			if u, ok := r.s.users[userID]; ok {
				cp := *u
				return &cp, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}
