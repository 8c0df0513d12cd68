package redisstore

import "context"

// mockDB implements the consumer interface for tests.
type mockDB struct {
	hsetFn   func(ctx context.Context, key string, fields map[string]string) error
	hgetFn   func(ctx context.Context, key string) (map[string]string, error)
	delFn    func(ctx context.Context, key string) error
	existsFn func(ctx context.Context, key string) (bool, error)
	lpushFn  func(ctx context.Context, key string, values ...string) error
	lremFn   func(ctx context.Context, key, value string) error
	lrangeFn func(ctx context.Context, key string) ([]string, error)
	pingFn   func(ctx context.Context) error
}

func (m *mockDB) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockDB) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetFn != nil {
		return m.hgetFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockDB) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockDB) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockDB) LPush(ctx context.Context, key string, values ...string) error {
	if m.lpushFn != nil {
		return m.lpushFn(ctx, key, values...)
	}
	return nil
}

func (m *mockDB) LRem(ctx context.Context, key, value string) error {
	if m.lremFn != nil {
		return m.lremFn(ctx, key, value)
	}
	return nil
}

func (m *mockDB) LRange(ctx context.Context, key string) ([]string, error) {
	if m.lrangeFn != nil {
		return m.lrangeFn(ctx, key)
	}
	return nil, nil
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}
