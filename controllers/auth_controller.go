package controllers

import (
	"hotel-client/dto"
	"hotel-client/response"
	"hotel-client/services"
	"hotel-client/services/logger"

	"github.com/gin-gonic/gin"
)

type AuthControllerOptions struct {
	Backend *services.BackendClient
	Session *services.Session
	Rooms   *services.RoomView
	Logger  logger.Logger
}

type AuthController struct {
	backend *services.BackendClient
	session *services.Session
	rooms   *services.RoomView
	logger  logger.Logger
}

func NewAuthController(opts AuthControllerOptions) *AuthController {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &AuthController{
		backend: opts.Backend,
		session: opts.Session,
		rooms:   opts.Rooms,
		logger:  log,
	}
}

// Login exchanges credentials with the backend, starts the session and
// loads the rooms.
func (a *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	out, err := a.backend.Login(c.Request.Context(), input)
	if err != nil {
		a.logger.Error("login failed for %q: %v", input.Username, err)
		_ = c.Error(err)
		return
	}

	username := out.Username
	if username == "" {
		username = input.Username
	}
	a.session.Login(out.Token, out.Role, username)

	if err := a.rooms.Refresh(c.Request.Context()); err != nil {
		a.logger.Error("initial room fetch failed: %v", err)
	}

	response.Success(c, dto.LoginResponse{
		Token:    out.Token,
		Role:     a.session.Role(),
		Username: a.session.Username(),
	})
}

func (a *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid registration data: "+err.Error())
		return
	}

	out, err := a.backend.Register(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, out)
}

func (a *AuthController) Logout(c *gin.Context) {
	a.session.Logout()
	response.Success(c, nil)
}

// Session reports who is logged in
func (a *AuthController) Session(c *gin.Context) {
	response.Success(c, dto.SessionResponse{
		Authenticated: a.session.IsAuthenticated(),
		Username:      a.session.Username(),
		Role:          a.session.Role(),
		IsAdmin:       a.session.IsAdmin(),
	})
}
