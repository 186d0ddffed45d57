// Command cdock-inhibit keeps the laptop awake with the lid closed while the USB-C dock is
// attached.
//
// It holds a logind "sleep:handle-lid-switch" block lock for as long as the dock is present. The
// program takes no arguments and is meant to run as a system service.
package main

import (
	"context"
	"errors"
	"github.com/MatthiasKunnen/cdock-inhibit/internal/config"
	"github.com/MatthiasKunnen/cdock-inhibit/internal/logging"
	"github.com/MatthiasKunnen/cdock-inhibit/pkg/dock"
	"github.com/MatthiasKunnen/cdock-inhibit/pkg/inhibit"
	"github.com/MatthiasKunnen/cdock-inhibit/pkg/udev"
	"github.com/coreos/go-systemd/v22/daemon"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.Default()
	logger := logging.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithContext(ctx, logger)

	err := run(ctx, cfg)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("cdock-inhibit failed")
	}

	logger.Info().Msg("cdock-inhibit stopped")
}

func run(ctx context.Context, cfg config.Config) (err error) {
	inhibitor, err := inhibit.New()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeLogged(ctx, "system bus connection", inhibitor.Close))
	}()

	source, err := udev.NewSource(logging.WithComponent(ctx, "udev"), cfg.Group)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeLogged(ctx, "udev monitor", source.Close))
	}()

	controller := dock.NewController(cfg.Matcher, source, inhibitor, cfg.Request)
	defer func() {
		err = errors.Join(err, closeLogged(ctx, "dock controller", controller.Close))
	}()

	controllerCtx := logging.WithComponent(ctx, "controller")
	if err := controller.Start(controllerCtx); err != nil {
		return err
	}

	logInhibitors(logging.WithComponent(ctx, "inhibit"), inhibitor)

	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to notify systemd")
	}

	err = controller.Loop(controllerCtx)
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)

	return err
}

// closeLogged logs a failing close right away. A shutdown caused by a signal still exits cleanly,
// so the error would otherwise go unreported.
func closeLogged(ctx context.Context, name string, closeFn func() error) error {
	err := closeFn()
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("resource", name).Msg("failed to close")
	}

	return err
}

func logInhibitors(ctx context.Context, inhibitor *inhibit.Inhibitor) {
	log := logging.FromContext(ctx)

	locks, err := inhibitor.ListInhibitors()
	if err != nil {
		log.Warn().Err(err).Msg("failed to list inhibitors")
		return
	}

	for _, l := range locks {
		log.Debug().
			Str("what", l.What).
			Str("who", l.Who).
			Str("why", l.Why).
			Str("mode", l.Mode).
			Uint32("pid", l.PID).
			Msg("inhibitor lock in effect")
	}
}
