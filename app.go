package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ynot/apiclient"
	"ynot/cart"
	"ynot/config"
	"ynot/favorites"
	"ynot/handlers"
	"ynot/logger"
	"ynot/session"
	"ynot/storage"
)

// app holds everything a command needs. It is built once per invocation
// and rehydrated from the state backend before the command runs.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	kv        storage.KV
	closeKV   func() error
	session   *session.Store
	cart      *cart.Store
	favorites *favorites.Store
	h         *handlers.Handlers
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	ctx = logger.ToContext(ctx, log.Sugar())

	kv, closeKV, err := openState(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sess := session.New(session.WithPersistence(kv), session.WithLogger(log))
	cartOpts := []cart.Option{cart.WithLogger(log)}
	if cfg.CartPersist {
		cartOpts = append(cartOpts, cart.WithPersistence(kv))
	}
	c := cart.New(cartOpts...)
	favs := favorites.New(favorites.WithPersistence(kv), favorites.WithLogger(log))

	api, err := apiclient.New(cfg.APIURL,
		apiclient.WithTimeout(cfg.APITimeout),
		apiclient.WithTokenSource(apiclient.TokenFunc(sess.Token)),
		apiclient.WithLogger(log),
	)
	if err != nil {
		_ = closeKV()
		return nil, err
	}

	return &app{
		cfg:       cfg,
		log:       log,
		kv:        kv,
		closeKV:   closeKV,
		session:   sess,
		cart:      c,
		favorites: favs,
		h:         handlers.New(api, sess, c, favs, log),
	}, nil
}

// restore loads the persisted session, cart and favorites.
func (a *app) restore(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if err := a.cart.Restore(ctx); err != nil {
		return fmt.Errorf("restore cart: %w", err)
	}
	if err := a.favorites.Restore(ctx); err != nil {
		return fmt.Errorf("restore favorites: %w", err)
	}
	return nil
}

func (a *app) close() error {
	err := a.closeKV()
	_ = a.log.Sync()
	return err
}

func openState(ctx context.Context, cfg *config.Config) (storage.KV, func() error, error) {
	var (
		kv      storage.KV
		closeFn = func() error { return nil }
	)

	switch cfg.StoreBackend {
	case config.BackendMemory:
		kv = storage.NewMemory()
	case config.BackendFile:
		f, err := storage.NewFile(cfg.StateDir)
		if err != nil {
			return nil, nil, err
		}
		kv = f
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		kv = storage.NewRedis(rdb)
		closeFn = rdb.Close
	case config.BackendPostgres:
		pg, err := storage.OpenPostgres(ctx, cfg.DBConnStr)
		if err != nil {
			return nil, nil, err
		}
		kv = pg
		closeFn = pg.Close
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if cfg.StateKey != "" {
		sealed, err := storage.NewSealed(ctx, kv, cfg.StateKey)
		if err != nil {
			_ = closeFn()
			return nil, nil, err
		}
		kv = sealed
	}

	logger.Infof(ctx, "state backend %s ready", cfg.StoreBackend)
	return kv, closeFn, nil
}
