package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"bittrexapi/internal/config"
	"bittrexapi/internal/logger"
	"bittrexapi/pkg/bittrex"
	"bittrexapi/pkg/bittrex/stream"
	"bittrexapi/pkg/query"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "путь к файлу конфигурации")
	custom := pflag.String("custom", "", "произвольный URL запроса")
	sign := pflag.Bool("sign", false, "подписать произвольный запрос")
	markets := pflag.StringSlice("stream", nil, "рынки для подписки через WS")
	list := pflag.Bool("list", false, "вывести список методов API")
	pflag.Parse()

	if *list {
		for _, ep := range bittrex.Endpoints() {
			fmt.Printf("%-22s auth=%-5t %s\n", ep.Name, ep.Auth, ep.Path)
		}
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Runtime.Log.Level,
		Format:     cfg.Runtime.Log.Format,
		Output:     cfg.Runtime.Log.File,
		MaxSize:    cfg.Runtime.Log.MaxSize,
		MaxBackups: cfg.Runtime.Log.MaxBackups,
		MaxAge:     cfg.Runtime.Log.MaxAge,
		Compress:   cfg.Runtime.Log.Compress,
	})
	defer log.Close()

	client := bittrex.New(bittrex.WithLogger(log.FieldLogger()))
	if err := client.Options(cfg.ClientOptions()); err != nil {
		log.WithError(err).Fatal("Некорректные настройки клиента.")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if len(*markets) > 0 {
		if err := runStream(ctx, client.Settings(), log, *markets, sigCh); err != nil {
			log.WithError(err).Error("WS завершился с ошибкой.")
			os.Exit(1)
		}
		return
	}

	args := pflag.Args()
	var call bittrex.Call
	switch {
	case *custom != "":
		call = func(ctx context.Context) (*bittrex.Response, error) {
			return client.SendCustomRequest(ctx, *custom, *sign)
		}
	case len(args) > 0:
		params, err := parseParams(args[1:])
		if err != nil {
			log.WithError(err).Fatal("Некорректные параметры.")
		}
		name := args[0]
		call = func(ctx context.Context) (*bittrex.Response, error) {
			return client.Call(ctx, name, params)
		}
	default:
		pflag.Usage()
		os.Exit(2)
	}

	type result struct {
		resp *bittrex.Response
		err  error
	}
	done := make(chan result, 1)
	client.Go(ctx, call, func(resp *bittrex.Response, err error) {
		done <- result{resp: resp, err: err}
	})

	select {
	case r := <-done:
		if r.err != nil {
			log.WithError(r.err).Error("Запрос не выполнен.")
			os.Exit(1)
		}
		fmt.Println(r.resp.String())
	case <-sigCh:
		cancel()
		log.Info("Запрос прерван.")
	}
}

func runStream(ctx context.Context, settings bittrex.Settings, log *logger.Logger, markets []string, sigCh <-chan os.Signal) error {
	errCh := make(chan error, 1)

	ws := stream.New(settings, log.FieldLogger())
	err := ws.Connect(ctx, func(frame []byte, err error) {
		if err != nil {
			errCh <- err
			return
		}
		fmt.Println(string(frame))
	})
	if err != nil {
		return err
	}
	defer ws.Close()

	for _, market := range markets {
		if err := ws.Subscribe("SubscribeToExchangeDeltas", market); err != nil {
			return err
		}
		log.WithMarket(market).Info("Подписка на рынок.")
	}

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		log.Info("WS остановлен.")
		return nil
	}
}

func parseParams(args []string) (query.Params, error) {
	params := query.New()
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("ожидается key=value, получено %q", arg)
		}
		params = params.Set(key, value)
	}
	return params, nil
}
