// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package subscriptions

import (
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/heatchain/heat/api/blocks"
	"github.com/heatchain/heat/api/utils"
	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/log"
)

var logger = log.WithContext("pkg", "subscriptions")

const (
	pingPeriod  = 10 * time.Second
	writeWait   = 5 * time.Second
	sendBacklog = 32
)

// BlockSource feeds newly accepted best blocks.
type BlockSource interface {
	SubscribeBestBlock(ch chan *block.Block) event.Subscription
}

type Subscriptions struct {
	source   BlockSource
	upgrader websocket.Upgrader
}

func New(source BlockSource) *Subscriptions {
	return &Subscriptions{
		source: source,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *Subscriptions) handleSubscribeBlock(w http.ResponseWriter, req *http.Request) error {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		// the upgrader has already replied
		return nil
	}
	defer conn.Close()

	ch := make(chan *block.Block, sendBacklog)
	sub := s.source.SubscribeBestBlock(ch)
	defer sub.Unsubscribe()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	for {
		select {
		case blk := <-ch:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(blocks.ConvertBlock(blk)); err != nil {
				logger.Debug("failed to write block", "err", err)
				return nil
			}
		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-closed:
			return nil
		case <-sub.Err():
			return nil
		}
	}
}

func (s *Subscriptions) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/block").
		Methods(http.MethodGet).
		Name("subscriptions_block").
		HandlerFunc(utils.WrapHandlerFunc(s.handleSubscribeBlock))
}
