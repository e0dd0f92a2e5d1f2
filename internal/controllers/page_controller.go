package controllers

import (
	"sort"

	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/gofiber/fiber/v3"
)

// PageController assembles the view models behind each route. Pages
// are JSON here; a UI renders them however it likes.
type PageController struct {
	fileService    domain.FileService
	folderService  domain.FolderService
	sessionService domain.SessionService
	billingService domain.BillingService
}

type PageControllerDependencies struct {
	FileService    domain.FileService
	FolderService  domain.FolderService
	SessionService domain.SessionService
	BillingService domain.BillingService
}

func NewPageController(deps PageControllerDependencies) *PageController {
	return &PageController{
		fileService:    deps.FileService,
		folderService:  deps.FolderService,
		sessionService: deps.SessionService,
		billingService: deps.BillingService,
	}
}

func (c *PageController) Login(ctx fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"page": "login"})
}

func (c *PageController) Signup(ctx fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"page": "signup"})
}

// Dashboard builds the main view model: the file and folder lists run
// through the name filter, the breadcrumb path, and the optional
// recent/starred view.
func (c *PageController) Dashboard(ctx fiber.Ctx) error {
	query := ctx.Query("q")
	view := ctx.Query("view")

	files, err := c.fileService.Files(ctx.RequestCtx())
	if err != nil {
		return statusError(err)
	}

	folders, err := c.folderService.Folders(ctx.RequestCtx())
	if err != nil {
		return statusError(err)
	}

	files = domain.FilterFiles(files, query)
	filteredFolders := domain.FilterFolders(folders, query)

	switch view {
	case "recent":
		files = recentFiles(files, 5)
	case "starred":
		// The demo has no starred state; the view exists but is empty.
		files = []domain.File{}
	}

	model := fiber.Map{
		"page":        "dashboard",
		"breadcrumbs": domain.NewBreadcrumbs(),
		"files":       files,
		"folders":     filteredFolders,
		"query":       query,
		"view":        view,
	}

	if session, err := c.sessionService.Current(ctx.RequestCtx()); err == nil {
		model["user"] = session.User
	}

	return ctx.JSON(model)
}

func (c *PageController) Trash(ctx fiber.Ctx) error {
	items, err := c.fileService.Trash(ctx.RequestCtx())
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(fiber.Map{
		"page":  "trash",
		"items": items,
	})
}

func (c *PageController) Pricing(ctx fiber.Ctx) error {
	plans, err := c.billingService.Plans(ctx.RequestCtx())
	if err != nil {
		return statusError(err)
	}

	return ctx.JSON(fiber.Map{
		"page":  "pricing",
		"plans": plans,
	})
}

// RedirectToLogin is the catch-all for unknown paths.
func (c *PageController) RedirectToLogin(ctx fiber.Ctx) error {
	return ctx.Redirect().To("/login")
}

func recentFiles(files []domain.File, n int) []domain.File {
	recent := append([]domain.File(nil), files...)

	// Dates are ISO strings, so lexical order is date order.
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Modified > recent[j].Modified
	})

	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}
