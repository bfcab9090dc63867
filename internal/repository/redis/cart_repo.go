package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aidajassomex/finca57/internal/domain"
	"github.com/aidajassomex/finca57/internal/repository/redis/converter"
	"github.com/aidajassomex/finca57/pkg/clients"
	"github.com/aidajassomex/finca57/pkg/e"
	"github.com/aidajassomex/finca57/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CartRepo хранит корзины сессий в Redis как JSON-значения с TTL.
// Истечение TTL — штатное завершение сессии, а не ошибка хранилища.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	ttl    time.Duration
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter,
	ttl time.Duration, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		ttl:    ttl,
		logger: logger,
	}
}

// GetCart возвращает корзину по идентификатору. Отсутствующий ключ — ErrCartNotFound.
func (c *CartRepo) GetCart(ctx context.Context, cartID string) (domain.Cart, error) {
	data, err := c.client.Client.Get(ctx, c.cartKey(cartID)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return domain.Cart{}, e.Wrap(cartID, e.ErrCartNotFound)
		}

		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return domain.Cart{}, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		// Битое значение неотличимо от отсутствующего с точки зрения сессии
		c.logger.Warnf("Redis unmarshal failed, dropping cart. cart_id: %s, err: %v", cartID, err)
		if delErr := c.client.Client.Del(ctx, c.cartKey(cartID)).Err(); delErr != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), delErr))
		}

		return domain.Cart{}, e.Wrap(cartID, e.ErrCartNotFound)
	}

	cart, err := c.conv.ToDomain(&model)
	if err != nil {
		return domain.Cart{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return cart, nil
}

// SaveCart сохраняет корзину и продлевает ее TTL.
func (c *CartRepo) SaveCart(ctx context.Context, cart domain.Cart) error {
	data, err := json.Marshal(c.conv.ToRedisModel(cart))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.cartKey(cart.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteCart удаляет корзину.
func (c *CartRepo) DeleteCart(ctx context.Context, cartID string) error {
	if err := c.client.Client.Del(ctx, c.cartKey(cartID)).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// cartKey возвращает Redis-ключ корзины
func (c *CartRepo) cartKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}
