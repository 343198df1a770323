package socket

import (
	"context"
	"log/slog"
	"net/url"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DialerParams holds dependencies for the websocket dialer
type DialerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type dialer struct {
	cfg    *config.SocketConfig
	logger *slog.Logger
}

// NewDialer creates the websocket transport dialer
func NewDialer(params DialerParams) (service.Dialer, error) {
	if params.Config.Socket == nil || params.Config.Socket.URL == "" {
		return nil, errors.New("socket url must be configured")
	}

	return &dialer{
		cfg:    params.Config.Socket,
		logger: params.Logger,
	}, nil
}

// Dial opens a connection carrying the credentials as query parameters and
// starts its connect/reconnect loop. Establishment is reported through the
// bound handlers; Dial itself never blocks on the handshake.
func (d *dialer) Dial(ctx context.Context, creds entity.Credentials, handlers service.ConnHandlers) (service.Conn, error) {
	endpoint, err := url.Parse(d.cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse socket url")
	}

	query := endpoint.Query()
	query.Set("token", creds.Token)
	query.Set("userId", creds.UserID.String())
	endpoint.RawQuery = query.Encode()

	conn := newConn(endpoint.String(), Options{
		ReconnectAttempts: d.cfg.ReconnectAttempts,
		ReconnectDelay:    d.cfg.ReconnectDelay,
		HandshakeTimeout:  d.cfg.HandshakeTimeout,
		WriteTimeout:      d.cfg.WriteTimeout,
		PingInterval:      d.cfg.PingInterval,
	}, handlers, d.logger)

	go conn.run()

	return conn, nil
}
