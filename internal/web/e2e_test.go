//go:build e2e

package web

import (
	"context"
	"errors"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"
)

const (
	selImportText     = "#import-text"
	selImportSubmit   = "#import-submit"
	selClearSubmit    = "#clear-submit"
	selPlayerName     = "#player-name"
	selClassification = "#classification"
	selTotal          = "#total"
	selMatchRow       = "tr.match-row"
	selExcludedRow    = "tr.match-row.excluded"
)

type BrowserSuite struct {
	suite.Suite
	server *Server
	url    string
}

func TestBrowser(t *testing.T) {
	suite.Run(t, &BrowserSuite{})
}

func (s *BrowserSuite) SetupSuite() {
	s.server = newTestServer(s.T())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.url = "http://" + ln.Addr().String()
	go func() {
		_ = s.server.app.Listener(ln)
	}()
}

func (s *BrowserSuite) TearDownSuite() {
	s.Require().NoError(s.server.Shutdown())
}

func (s *BrowserSuite) TestImportAndClear() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	var (
		name, classification, total string
		rows                        []*cdp.Node
	)
	err := chromedp.Run(ctx,
		chromedp.Navigate(s.url),
		chromedp.WaitVisible(selImportText, chromedp.ByQuery),
		chromedp.SetValue(selImportText, export, chromedp.ByQuery),
		chromedp.Click(selImportSubmit, chromedp.ByQuery),
		chromedp.WaitVisible(selPlayerName, chromedp.ByQuery),
		chromedp.Text(selPlayerName, &name, chromedp.ByQuery),
		chromedp.Text(selClassification, &classification, chromedp.ByQuery),
		chromedp.Text(selTotal, &total, chromedp.ByQuery),
		chromedp.Nodes(selMatchRow, &rows, chromedp.ByQueryAll),
	)
	s.screenshotOnError(ctx, err)
	s.Require().NoError(err)
	s.Equal("Muster Hans (123.45.678.9)", name)
	s.Equal("R5", classification)
	s.Equal("5.396", total)
	s.Len(rows, 2)

	err = chromedp.Run(ctx,
		chromedp.Click(selClearSubmit, chromedp.ByQuery),
		chromedp.WaitNotPresent(selMatchRow, chromedp.ByQuery),
	)
	s.screenshotOnError(ctx, err)
	s.Require().NoError(err)
	s.Empty(s.server.session.Matches())
}

func (s *BrowserSuite) TestExcludedRowsStruckThrough() {
	var b strings.Builder
	for _, r := range []string{"1,0", "2,0", "3,0", "4,0", "5,0", "6,0"} {
		b.WriteString("12.05.2024\nGegner\n" + r + "\nTurnier\n3:6 3:6\nN\n")
	}
	_, err := s.server.session.Import(b.String())
	s.Require().NoError(err)
	defer s.server.session.Clear()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	var excluded []*cdp.Node
	err = chromedp.Run(ctx,
		chromedp.Navigate(s.url),
		chromedp.WaitVisible(selMatchRow, chromedp.ByQuery),
		chromedp.Nodes(selExcludedRow, &excluded, chromedp.ByQueryAll),
	)
	s.screenshotOnError(ctx, err)
	s.Require().NoError(err)
	s.Len(excluded, 1)
}

func (s *BrowserSuite) screenshotOnError(ctx context.Context, err error) {
	if err == nil || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	var shot []byte
	if errS := chromedp.Run(ctx, chromedp.FullScreenshot(&shot, 80)); errS != nil {
		return
	}
	if errW := os.WriteFile(strings.ReplaceAll(s.T().Name(), "/", "_")+".png", shot, 0o644); errW != nil {
		s.T().Logf("screenshot: %v", errW)
	}
}
