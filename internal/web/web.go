package web

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/sirupsen/logrus"

	embedded "github.com/goserg/wettkampfwert"
	"github.com/goserg/wettkampfwert/internal/config"
	"github.com/goserg/wettkampfwert/internal/domain"
	"github.com/goserg/wettkampfwert/internal/parser"
	"github.com/goserg/wettkampfwert/internal/service"
	"github.com/goserg/wettkampfwert/internal/web/webpath"
)

type Server struct {
	session *service.Session
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Entry
}

func New(session *service.Session, cfg config.Server, log *logrus.Logger) (*Server, error) {
	server := Server{
		session: session,
		cfg:     cfg,
		log:     log.WithField("name", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatRating", formatRating)
	engine.AddFunc("DeletePath", deletePath)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: !cfg.Debug,
	})
	app.Get(webpath.Home, server.handleMain)
	app.Post(webpath.Import, server.handleImport)
	app.Post(webpath.StartingRating, server.handleStartingRating)
	app.Post(webpath.ClearMatches, server.handleClear)
	app.Post(webpath.DeleteMatch, server.handleDelete)

	app.Get(webpath.ApiResult, server.handleApiResult)
	app.Get(webpath.ApiMatches, server.handleApiMatches)
	app.Post(webpath.ApiImport, server.handleApiImport)
	app.Delete(webpath.ApiMatchIndex, server.handleApiDelete)
	app.Delete(webpath.ApiMatches, server.handleApiClear)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	return s.render(ctx, newData("Wettkampfwert Rechner"))
}

func (s *Server) render(ctx *fiber.Ctx, d data) error {
	snap := s.session.Snapshot()
	d = d.
		With("PlayerName", snap.PlayerName).
		With("Info", snap.Info).
		With("StartingRating", snap.StartingRating).
		With("Result", snap.Result.Rounded()).
		With("Matches", convertMatches(snap.Matches, snap.Result.ExcludedMatches))
	return ctx.Render("index", d, "layouts/main")
}

func (s *Server) handleImport(ctx *fiber.Ctx) error {
	req := importRequest{Text: ctx.FormValue("text")}
	if err := req.Validate(); err != nil {
		return s.render(ctx, newData("Import").WithError(err))
	}
	if _, err := s.session.Import(req.Text); err != nil {
		return s.render(ctx, newData("Import").WithError(err))
	}
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleStartingRating(ctx *fiber.Ctx) error {
	if err := s.session.SetStartingRatingText(ctx.FormValue("starting_rating")); err != nil {
		return s.render(ctx, newData("Wettkampfwert Rechner").WithError(err))
	}
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleClear(ctx *fiber.Ctx) error {
	s.session.Clear()
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleDelete(ctx *fiber.Ctx) error {
	if err := s.removeMatch(ctx); err != nil {
		return err
	}
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleApiResult(ctx *fiber.Ctx) error {
	snap := s.session.Snapshot()
	return ctx.JSON(convertResult(snap.Result, snap.PlayerName, snap.StartingRating))
}

func (s *Server) handleApiMatches(ctx *fiber.Ctx) error {
	snap := s.session.Snapshot()
	return ctx.JSON(convertMatches(snap.Matches, snap.Result.ExcludedMatches))
}

func (s *Server) handleApiImport(ctx *fiber.Ctx) error {
	var req importRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	sum, err := s.session.Import(req.Text)
	if err != nil {
		if errors.Is(err, parser.ErrNoResults) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		s.log.WithError(err).Error("import failed")
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	resp := importResponse{
		Added:      sum.Added,
		PlayerName: sum.PlayerName,
	}
	if sum.StartingRatingSet {
		resp.StartingRating = &sum.StartingRating
	}
	for _, a := range sum.AmbiguousBlocks {
		resp.AmbiguousBlocks = append(resp.AmbiguousBlocks, a.Line+1)
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

func (s *Server) handleApiDelete(ctx *fiber.Ctx) error {
	if err := s.removeMatch(ctx); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleApiClear(ctx *fiber.Ctx) error {
	s.session.Clear()
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) removeMatch(ctx *fiber.Ctx) error {
	i, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid match index")
	}
	if err := s.session.Remove(i); err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}
	return nil
}

func formatRating(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

func deletePath(i int) string {
	return strings.Replace(webpath.DeleteMatch, ":index", strconv.Itoa(i), 1)
}
