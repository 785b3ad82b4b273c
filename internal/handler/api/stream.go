package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	xhttp "StockCast/pkg/http"
	applogger "StockCast/pkg/logger"
	"StockCast/pkg/util"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer in front.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// QuoteMessage is one pushed quote frame.
type QuoteMessage struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	At     string  `json:"at"`
}

// QuotesStream handles GET /api/quotes/ws?symbols=AAPL,MSFT&interval=15,
// a WebSocket pushing the latest close per symbol every interval seconds.
func (h *Handler) QuotesStream(c echo.Context) error {
	symbols := util.SplitSymbols(c.QueryParam("symbols"))
	if len(symbols) == 0 {
		return xhttp.BadRequest(c, "symbols query param is required")
	}
	interval := util.ParseIntDefault(c.QueryParam("interval"), 15)
	if interval < 1 {
		interval = 1
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := c.Request().Context()

	push := func() error {
		for _, symbol := range symbols {
			price, err := h.provider.FetchLatestClose(ctx, symbol)
			if err != nil {
				h.logger.Warn("quote fetch failed",
					applogger.String("symbol", symbol), applogger.Error(err))
				continue
			}
			msg := QuoteMessage{Symbol: symbol, Price: price, At: time.Now().UTC().Format(time.RFC3339)}
			if err := conn.WriteJSON(msg); err != nil {
				return err
			}
		}
		return nil
	}

	if err := push(); err != nil {
		return nil
	}

	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := push(); err != nil {
				return nil // client went away
			}
		}
	}
}
