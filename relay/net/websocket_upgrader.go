package net

import "net/http"
import "github.com/gorilla/websocket"

import "github.com/dadleyy/relay.api/relay/defs"

// WebsocketUpgrader defines an interface that upgrades an http request to a streamer interface.
type WebsocketUpgrader interface {
	UpgradeWebsocket(http.ResponseWriter, *http.Request, http.Header) (defs.Streamer, error)
}

// SocketUpgrader implements the WebsocketUpgrader interface on top of the gorilla upgrader.
type SocketUpgrader struct {
	websocket.Upgrader
}

// UpgradeWebsocket performs the protocol switch, returning the connection as a streamer.
func (upgrader *SocketUpgrader) UpgradeWebsocket(response http.ResponseWriter, request *http.Request, header http.Header) (defs.Streamer, error) {
	return upgrader.Upgrade(response, request, header)
}
