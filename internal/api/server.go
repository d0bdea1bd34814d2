package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/hackforge/hackathon-api/docs"
	v1 "github.com/hackforge/hackathon-api/internal/api/handler/v1"
	"github.com/hackforge/hackathon-api/internal/api/middleware"
	"github.com/hackforge/hackathon-api/internal/config"
	"github.com/hackforge/hackathon-api/internal/repository"
	"github.com/hackforge/hackathon-api/internal/repository/dao"
	"github.com/hackforge/hackathon-api/internal/service"
	"github.com/hackforge/hackathon-api/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Live must be started with Run before the server accepts traffic.
	Live *v1.LiveLeaderboard
}

type handlers struct {
	user        *v1.UserHandler
	hackathon   *v1.HackathonHandler
	team        *v1.TeamHandler
	submission  *v1.SubmissionHandler
	leaderboard *v1.LeaderboardHandler
	sponsor     *v1.SponsorHandler
	prize       *v1.PrizeHandler
	issue       *v1.IssueHandler
}

type repositories struct {
	tx          *repository.Transactor
	users       *repository.UserRepository
	hackathons  *repository.HackathonRepository
	teams       *repository.TeamRepository
	submissions *repository.SubmissionRepository
	sponsors    *repository.SponsorRepository
	prizes      *repository.PrizeRepository
	issues      *repository.IssueRepository
}

// NewServer wires every layer on top of db. uploader may be nil, which
// disables sponsor logo uploads.
func NewServer(conf *config.AppConfig, db *gorm.DB, uploader storage.FileUploader) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	repos := initRepositories(db)
	h := s.initHandlers(repos, uploader)
	s.MountHandlers(h)

	return s
}

func initRepositories(db *gorm.DB) repositories {
	return repositories{
		tx:          repository.NewTransactor(dao.NewTxDAO(db)),
		users:       repository.NewUserRepository(dao.NewUserDAO(db)),
		hackathons:  repository.NewHackathonRepository(dao.NewHackathonDAO(db)),
		teams:       repository.NewTeamRepository(dao.NewTeamDAO(db)),
		submissions: repository.NewSubmissionRepository(dao.NewSubmissionDAO(db)),
		sponsors:    repository.NewSponsorRepository(dao.NewSponsorDAO(db)),
		prizes:      repository.NewPrizeRepository(dao.NewPrizeDAO(db)),
		issues:      repository.NewIssueRepository(dao.NewIssueDAO(db)),
	}
}

func (s *Server) initHandlers(r repositories, uploader storage.FileUploader) handlers {
	userSvc := service.NewUserService(r.tx, r.users, r.sponsors)
	leaderboardSvc := service.NewLeaderboardService(r.hackathons, r.teams, r.submissions)

	// The live feed is the notifier of every service that moves the leaderboard.
	s.Live = v1.NewLiveLeaderboard(leaderboardSvc)

	hackathonSvc := service.NewHackathonService(r.tx, r.hackathons)
	teamSvc := service.NewTeamService(r.tx, r.teams, r.hackathons, userSvc, r.submissions, s.Live)
	submissionSvc := service.NewSubmissionService(r.tx, r.submissions, r.teams, r.hackathons, r.sponsors, s.Live)
	sponsorSvc := service.NewSponsorService(r.sponsors, r.hackathons, r.teams, r.submissions, r.prizes, uploader)
	prizeSvc := service.NewPrizeService(r.prizes, r.hackathons, r.sponsors)
	issueSvc := service.NewIssueService(r.tx, r.issues, r.hackathons)

	return handlers{
		user:        v1.NewUserHandler(userSvc),
		hackathon:   v1.NewHackathonHandler(hackathonSvc),
		team:        v1.NewTeamHandler(teamSvc),
		submission:  v1.NewSubmissionHandler(submissionSvc),
		leaderboard: v1.NewLeaderboardHandler(leaderboardSvc),
		sponsor:     v1.NewSponsorHandler(sponsorSvc),
		prize:       v1.NewPrizeHandler(prizeSvc),
		issue:       v1.NewIssueHandler(issueSvc),
	}
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ZapLogger())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	api := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		api.GET("/me", h.user.HandleMe)

		api.POST("/hackathons", h.hackathon.HandleCreateHackathon)
		api.GET("/hackathons", h.hackathon.HandleListHackathons)
		api.GET("/hackathons/:hackathonID", h.hackathon.HandleGetHackathon)
		api.PATCH("/hackathons/:hackathonID", h.hackathon.HandleUpdateHackathon)
		api.POST("/hackathons/:hackathonID/start", h.hackathon.HandleStartHackathon)

		api.POST("/hackathons/:hackathonID/teams", h.team.HandleCreateTeam)
		api.GET("/hackathons/:hackathonID/teams", h.team.HandleListTeams)
		api.GET("/hackathons/:hackathonID/teams/mine", h.team.HandleGetMyTeam)
		api.GET("/hackathons/:hackathonID/teams/recommended", h.team.HandleRecommendTeams)
		api.GET("/hackathons/:hackathonID/submissions", h.submission.HandleListSubmissions)
		api.GET("/hackathons/:hackathonID/leaderboard", h.leaderboard.HandleGetLeaderboard)
		api.GET("/hackathons/:hackathonID/leaderboard/live", s.Live.HandleLiveLeaderboard)
		api.POST("/hackathons/:hackathonID/sponsors", h.sponsor.HandleCreateSponsor)
		api.GET("/hackathons/:hackathonID/sponsors", h.sponsor.HandleListSponsors)
		api.GET("/hackathons/:hackathonID/sponsors/adoption", h.sponsor.HandleGetHackathonAdoption)
		api.POST("/hackathons/:hackathonID/prizes", h.prize.HandleCreatePrize)
		api.GET("/hackathons/:hackathonID/prizes", h.prize.HandleListPrizes)
		api.POST("/hackathons/:hackathonID/issues", h.issue.HandleCreateIssue)
		api.GET("/hackathons/:hackathonID/issues", h.issue.HandleListIssues)

		api.GET("/teams/:teamID", h.team.HandleGetTeam)
		api.PATCH("/teams/:teamID", h.team.HandleUpdateTeam)
		api.POST("/teams/:teamID/join", h.team.HandleJoinTeam)
		api.POST("/teams/:teamID/leave", h.team.HandleLeaveTeam)
		api.POST("/teams/:teamID/submission", h.submission.HandleCreateSubmission)
		api.GET("/teams/:teamID/submission", h.submission.HandleGetTeamSubmission)

		api.GET("/submissions/:submissionID", h.submission.HandleGetSubmission)
		api.PATCH("/submissions/:submissionID", h.submission.HandleUpdateSubmission)
		api.DELETE("/submissions/:submissionID", h.submission.HandleDeleteSubmission)
		api.POST("/submissions/:submissionID/advance", h.submission.HandleAdvanceSubmission)

		api.GET("/sponsors/:sponsorID", h.sponsor.HandleGetSponsor)
		api.GET("/sponsors/:sponsorID/adoption", h.sponsor.HandleGetAdoption)
		api.POST("/sponsors/:sponsorID/employees", h.sponsor.HandleInviteEmployee)
		api.PUT("/sponsors/:sponsorID/logo", h.sponsor.HandleUploadLogo)

		api.DELETE("/prizes/:prizeID", h.prize.HandleDeletePrize)

		api.GET("/issues/:issueID", h.issue.HandleGetIssue)
		api.PATCH("/issues/:issueID/status", h.issue.HandleSetIssueStatus)
		api.POST("/issues/:issueID/advance", h.issue.HandleAdvanceIssue)
		api.POST("/issues/:issueID/reopen", h.issue.HandleReopenIssue)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Hackathon API"
	docs.SwaggerInfo.Description = "Teams, submissions, scoring, sponsors and issues for hackathons."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
