package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/luizeletrico1/sistema-otica-fim/internal/config"
	"github.com/luizeletrico1/sistema-otica-fim/internal/handler"
	"github.com/luizeletrico1/sistema-otica-fim/internal/infra"
	"github.com/luizeletrico1/sistema-otica-fim/internal/middleware"
	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
	"github.com/luizeletrico1/sistema-otica-fim/internal/service"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
	"github.com/luizeletrico1/sistema-otica-fim/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store
func New(cfg *config.Config, st *store.Store, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Infrastructure ───────────────────────────────────────────────────────
	cepClient := infra.NewCEPClient(cfg.ViaCEPURL)
	geocoderClient := infra.NewGeocoderClient(cfg.GeocoderURL)
	loja := model.LojaInfo{Nome: cfg.LojaNome, Cidade: cfg.LojaCidade, Telefone: cfg.LojaTelefone}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(st)
	clienteRepo := repository.NewClienteRepository(st)
	produtoRepo := repository.NewProdutoRepository(st)
	mensagemRepo := repository.NewMensagemRepository(st)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo, cfg.FotosDir)
	produtoSvc := service.NewProdutoService(produtoRepo)
	receitaSvc := service.NewReceitaService(clienteRepo)
	vendaSvc := service.NewVendaService(produtoRepo, clienteRepo, loja, cfg.PDFStoragePath)
	marketingSvc := service.NewMarketingService(clienteRepo, mensagemRepo, dispatcher)
	dashboardSvc := service.NewDashboardService(clienteRepo, produtoRepo, receitaSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	receitasH := handler.NewReceitasHandler(receitaSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	marketingH := handler.NewMarketingHandler(marketingSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	lookupH := handler.NewLookupHandler(cepClient, geocoderClient)
	backupH := handler.NewBackupHandler(st)
	documentosH := handler.NewDocumentosHandler(cfg.PDFStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(st, rdb, cepClient, geocoderClient))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Address lookups used by the registration form — public, nothing
	// sensitive comes back.
	r.GET("/v1/cep/:cep", lookupH.ConsultarCEP)
	r.GET("/v1/geocode", lookupH.Geocodificar)

	// Protected routes
	sessionMW := middleware.SessionAuth(cfg.SessionSecret)
	v1 := r.Group("/v1", sessionMW)
	{
		v1.GET("/auth/me", authH.Me)
		v1.POST("/auth/logout", authH.Logout)

		clientes := v1.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.POST("", clientesH.Criar)
			clientes.GET("/:id", clientesH.Buscar)
			clientes.PUT("/:id", clientesH.Atualizar)
			clientes.DELETE("/:id", clientesH.Remover)
			clientes.POST("/:id/foto", clientesH.EnviarFoto)
			clientes.GET("/:id/foto", clientesH.BaixarFoto)
			clientes.GET("/:id/receitas", receitasH.ListarDoCliente)
			clientes.POST("/:id/receitas", receitasH.Adicionar)
		}

		v1.GET("/receitas/vencidas", receitasH.Vencidas)

		produtos := v1.Group("/produtos")
		{
			produtos.GET("", produtosH.Listar)
			produtos.POST("", produtosH.Criar)
			produtos.GET("/:id", produtosH.Buscar)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Remover)
		}

		v1.POST("/vendas", vendasH.Registrar)
		v1.POST("/vendas/simulacao", vendasH.Simular)
		v1.POST("/orcamentos", vendasH.Orcamento)
		v1.GET("/documentos/:nome", documentosH.Baixar)

		v1.GET("/dashboard", dashboardH.Resumo)

		marketing := v1.Group("/marketing")
		{
			marketing.GET("/clientes", marketingH.FiltrarClientes)
			marketing.POST("/disparo", marketingH.Disparar)
			marketing.GET("/templates", marketingH.ListarTemplates)
			marketing.POST("/templates", marketingH.CriarTemplate)
			marketing.PUT("/templates/:titulo", marketingH.AtualizarTemplate)
			marketing.DELETE("/templates/:titulo", marketingH.RemoverTemplate)
			marketing.GET("/config", marketingH.ConfigLoja)
		}

		// Admin-only surface
		admin := v1.Group("", middleware.RequirePerfil(model.PerfilAdmin))
		{
			admin.PUT("/marketing/config", marketingH.SalvarConfigLoja)
			admin.GET("/usuarios", usuariosH.Listar)
			admin.POST("/usuarios", usuariosH.Criar)
			admin.PUT("/usuarios/:usuario", usuariosH.Atualizar)
			admin.DELETE("/usuarios/:usuario", usuariosH.Remover)
			admin.GET("/backup/:colecao", backupH.Baixar)
		}
	}

	return r
}
