package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/voltatec/field-asset-api/internal/audit"
	"github.com/voltatec/field-asset-api/internal/handlers"
	infraRepo "github.com/voltatec/field-asset-api/internal/infra/repository"
	"github.com/voltatec/field-asset-api/internal/middleware"
	"github.com/voltatec/field-asset-api/internal/session"
	ucAtribuicao "github.com/voltatec/field-asset-api/internal/usecase/atribuicao"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions session.Store, sessionTTL time.Duration) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	atribuicaoRepo := infraRepo.NewAtribuicaoGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — ATRIBUIÇÕES
	// ======================================================
	createAtribuicaoUC := ucAtribuicao.NewCreateAtribuicao(
		atribuicaoRepo,
		auditDispatcher,
	)

	devolverAtribuicaoUC := ucAtribuicao.NewDevolverAtribuicao(
		atribuicaoRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, sessions, sessionTTL)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)

	eletricistaHandler := handlers.NewEletricistaHandler(db, auditDispatcher)
	ferramentaEPIHandler := handlers.NewFerramentaEPIHandler(db, auditDispatcher)
	veiculoHandler := handlers.NewVeiculoHandler(db, auditDispatcher)

	atribuicaoHandler := handlers.NewAtribuicaoHandler(
		db,
		createAtribuicaoUC,
		devolverAtribuicaoUC,
	)

	servicoExternoHandler := handlers.NewServicoExternoHandler(db, auditDispatcher)

	searchHandler := handlers.NewSearchHandler(db)
	exportHandler := handlers.NewExportHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// AUTH (sem guard: login/logout são públicos, /auth/me
	// trata a própria sessão)
	// ======================================================
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)
	r.GET("/auth/me", authHandler.Me)

	// ======================================================
	// ROTAS AUTENTICADAS (qualquer usuário logado)
	// ======================================================
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(sessions))
	{
		authed.GET("/eletricistas", eletricistaHandler.List)
		authed.GET("/eletricistas/:id", eletricistaHandler.Get)

		authed.GET("/ferramentas-epis", ferramentaEPIHandler.List)
		authed.GET("/ferramentas-epis/:id", ferramentaEPIHandler.Get)

		authed.GET("/veiculos", veiculoHandler.List)
		authed.GET("/veiculos/:id", veiculoHandler.Get)

		// ------------------------------
		// ATRIBUIÇÕES
		// ------------------------------
		authed.GET("/atribuicoes", atribuicaoHandler.List)
		authed.POST("/atribuicoes", atribuicaoHandler.Create)
		authed.GET("/atribuicoes/:id", atribuicaoHandler.Get)
		authed.PUT("/atribuicoes/:id/devolver", atribuicaoHandler.Devolver)

		// ------------------------------
		// SERVIÇOS EXTERNOS
		// ------------------------------
		authed.GET("/servicos-externos", servicoExternoHandler.List)
		authed.POST("/servicos-externos", servicoExternoHandler.Create)
		authed.GET("/servicos-externos/:id", servicoExternoHandler.Get)
		authed.PUT("/servicos-externos/:id", servicoExternoHandler.Update)
		authed.DELETE("/servicos-externos/:id", servicoExternoHandler.Delete)

		// ------------------------------
		// BUSCA E EXPORTAÇÃO
		// ------------------------------
		authed.GET("/search/atribuicoes", searchHandler.SearchAtribuicoes)
		authed.GET("/search/servicos-externos", searchHandler.SearchServicosExternos)

		authed.GET("/export/atribuicoes/pdf", exportHandler.AtribuicoesPDF)
		authed.GET("/export/atribuicoes/excel", exportHandler.AtribuicoesExcel)
		authed.GET("/export/servicos-externos/pdf", exportHandler.ServicosExternosPDF)
		authed.GET("/export/servicos-externos/excel", exportHandler.ServicosExternosExcel)
	}

	// ======================================================
	// ROTAS DE ADMINISTRADOR
	// ======================================================
	admin := r.Group("/")
	admin.Use(middleware.RequireAdmin(sessions))
	{
		admin.POST("/eletricistas", eletricistaHandler.Create)
		admin.PUT("/eletricistas/:id", eletricistaHandler.Update)
		admin.DELETE("/eletricistas/:id", eletricistaHandler.Delete)

		admin.POST("/ferramentas-epis", ferramentaEPIHandler.Create)
		admin.PUT("/ferramentas-epis/:id", ferramentaEPIHandler.Update)
		admin.DELETE("/ferramentas-epis/:id", ferramentaEPIHandler.Delete)

		admin.POST("/veiculos", veiculoHandler.Create)
		admin.PUT("/veiculos/:id", veiculoHandler.Update)
		admin.DELETE("/veiculos/:id", veiculoHandler.Delete)

		admin.GET("/users", userHandler.List)
		admin.POST("/users", userHandler.Create)
		admin.GET("/users/:id", userHandler.Get)
		admin.PUT("/users/:id", userHandler.Update)
		admin.DELETE("/users/:id", userHandler.Delete)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
