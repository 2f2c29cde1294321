package main

import "os"
import "flag"
import "sync"
import "regexp"
import "net/http"

import "github.com/gorilla/websocket"
import "github.com/garyburd/redigo/redis"

import "github.com/dadleyy/relay.api/relay/net"
import "github.com/dadleyy/relay.api/relay/defs"
import "github.com/dadleyy/relay.api/relay/config"
import "github.com/dadleyy/relay.api/relay/routes"
import "github.com/dadleyy/relay.api/relay/weblog"
import "github.com/dadleyy/relay.api/relay/worker"
import "github.com/dadleyy/relay.api/relay/logging"
import "github.com/dadleyy/relay.api/relay/security"

func main() {
	configPath, port := "", ""

	flag.StringVar(&configPath, "config", "", "path to an optional toml configuration file")
	flag.StringVar(&port, "port", "", "overrides the configured http port")
	flag.Parse()

	logger := logging.New(defs.MainLogPrefix, logging.White)

	options, e := config.Load(configPath)

	if e != nil {
		logger.Errorf("unable to load configuration: %s", e.Error())
		return
	}

	if len(port) >= 1 {
		options.Port = port
	}

	var sink weblog.Sink = &weblog.NullSink{}
	var queue *weblog.Queue

	writer, e := accessLogWriter(&options)

	if e != nil {
		logger.Errorf("unable to open access log destination: %s", e.Error())
		return
	}

	if writer != nil {
		if queue, e = weblog.NewQueue(writer, options.WebLogQueueSize); e != nil {
			logger.Errorf("unable to build web log queue: %s", e.Error())
			return
		}

		sink = queue
	}

	wg, kill := sync.WaitGroup{}, make(defs.KillSwitch)

	if queue != nil {
		wg.Add(1)
		go queue.Start(&wg, kill)
	}

	dispatcher := worker.NewDispatcher(options.WorkerTimeout())
	primitives := routes.NewPrimitivesAPI(dispatcher)
	streams := routes.NewStreamsAPI()

	wg.Add(1)
	go streams.Start(&wg, kill)

	routeList := net.RouteList{
		net.RouteConfig{Method: "GET", Pattern: regexp.MustCompile("^/system/info$")}:                   routes.SystemInfo,
		net.RouteConfig{Method: "PUT", Pattern: regexp.MustCompile("^/primitive/(?P<status>\\d+)$")}:    primitives.Update,
		net.RouteConfig{Method: "GET", Pattern: regexp.MustCompile("^/streams/(?P<topic>[\\d\\w-]+)$")}: streams.Attach,
	}

	runtime := net.ServerRuntime{
		Multiplexer: &routeList,
		WebsocketUpgrader: &net.SocketUpgrader{
			Upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024, CheckOrigin: security.AnyOrigin},
		},
		Logger: logging.New(defs.ServerRuntimeLogPrefix, logging.Cyan),

		Sink:          sink,
		Registrations: streams.Registrations,
	}

	logger.Infof("starting server on %s", options.Address())

	if e := http.ListenAndServe(options.Address(), &runtime); e != nil {
		logger.Errorf("unable to start server: %s", e.Error())
	}

	close(kill)
	wg.Wait()
}

func accessLogWriter(options *config.Options) (weblog.Writer, error) {
	if len(options.RedisURI) >= 1 {
		connection, e := redis.DialURL(options.RedisURI)

		if e != nil {
			return nil, e
		}

		return &weblog.RedisWriter{Conn: connection}, nil
	}

	if len(options.AccessLogPath) >= 1 {
		file, e := os.OpenFile(options.AccessLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

		if e != nil {
			return nil, e
		}

		return &weblog.LineWriter{Writer: file}, nil
	}

	return nil, nil
}
