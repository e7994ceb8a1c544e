package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/gestaolocadora/api-locadora/internal/aluguel"
	"github.com/gestaolocadora/api-locadora/internal/auth"
	"github.com/gestaolocadora/api-locadora/internal/cliente"
	"github.com/gestaolocadora/api-locadora/internal/contrato"
	"github.com/gestaolocadora/api-locadora/internal/dashboard"
	"github.com/gestaolocadora/api-locadora/internal/manutencao"
	"github.com/gestaolocadora/api-locadora/internal/notificacao"
	"github.com/gestaolocadora/api-locadora/internal/pagamento"
	"github.com/gestaolocadora/api-locadora/internal/usuario"
	"github.com/gestaolocadora/api-locadora/internal/utils"
	"github.com/gestaolocadora/api-locadora/internal/utils/db"
	"github.com/gestaolocadora/api-locadora/internal/veiculo"
	"github.com/gestaolocadora/api-locadora/internal/vistoria"
)

func main() {
	_ = godotenv.Load()

	conexao, err := db.Conectar()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	migracoes := []func(*gorm.DB) error{
		veiculo.Migrate,
		cliente.Migrate,
		aluguel.Migrate,
		pagamento.Migrate,
		manutencao.Migrate,
		vistoria.Migrate,
		usuario.Migrate,
	}
	for _, migrar := range migracoes {
		if err := migrar(conexao); err != nil {
			log.Fatal("Erro no AutoMigrate:", err)
		}
	}

	uploadDir := utils.GetEnv("UPLOAD_DIR", "uploads")

	// Handlers
	veiculoHandler := veiculo.NewHandler(conexao)
	clienteHandler := cliente.NewHandler(conexao)
	aluguelHandler := aluguel.NewHandler(conexao)
	pagamentoHandler := pagamento.NewHandler(conexao)
	pagamentoHandler.Notificar = notificacao.EnviarAlertaAtraso
	manutencaoHandler := manutencao.NewHandler(conexao)
	vistoriaHandler := vistoria.NewHandler(conexao, uploadDir)
	contratoHandler := contrato.NewHandler()
	dashboardHandler := dashboard.NewHandler(conexao)
	usuarioHandler := usuario.NewHandler(conexao)

	// Router
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","message":"API de Gestão de Aluguel de Veículos"}`))
	}).Methods("GET")

	// Fotos de vistoria servidas estaticamente
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	api := r.PathPrefix("/api").Subrouter()

	// Rotas públicas de autenticação
	api.HandleFunc("/auth/login", usuarioHandler.Login).Methods("POST")
	api.HandleFunc("/auth/registrar", usuarioHandler.Registrar).Methods("POST")

	protegido := api.NewRoute().Subrouter()
	protegido.Use(auth.MiddlewareAutenticacao)

	// Rotas de veículos
	protegido.HandleFunc("/veiculos", veiculoHandler.Criar).Methods("POST")
	protegido.HandleFunc("/veiculos", veiculoHandler.ListarTodos).Methods("GET")
	protegido.HandleFunc("/veiculos/disponiveis", veiculoHandler.ListarDisponiveis).Methods("GET")
	protegido.HandleFunc("/veiculos/{id}", veiculoHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/veiculos/{id}", veiculoHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/veiculos/{id}", veiculoHandler.Deletar).Methods("DELETE")

	// Rotas de clientes
	protegido.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	protegido.HandleFunc("/clientes", clienteHandler.ListarTodos).Methods("GET")
	protegido.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")

	// Rotas de aluguéis
	protegido.HandleFunc("/alugueis", aluguelHandler.Criar).Methods("POST")
	protegido.HandleFunc("/alugueis", aluguelHandler.ListarTodos).Methods("GET")
	protegido.HandleFunc("/alugueis/ativos", aluguelHandler.ListarAtivos).Methods("GET")
	protegido.HandleFunc("/alugueis/{id}", aluguelHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/alugueis/{id}", aluguelHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/alugueis/{id}", aluguelHandler.Deletar).Methods("DELETE")
	protegido.HandleFunc("/alugueis/{id}/pagamentos", pagamentoHandler.ListarPorAluguel).Methods("GET")

	// Rotas de pagamentos
	protegido.HandleFunc("/pagamentos", pagamentoHandler.Criar).Methods("POST")
	protegido.HandleFunc("/pagamentos", pagamentoHandler.ListarTodos).Methods("GET")
	protegido.HandleFunc("/pagamentos/proximos-vencimento", pagamentoHandler.ListarProximosVencimento).Methods("GET")
	protegido.HandleFunc("/pagamentos/atualizar-atrasados", pagamentoHandler.AtualizarAtrasados).Methods("POST")
	protegido.HandleFunc("/pagamentos/{id}", pagamentoHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/pagamentos/{id}", pagamentoHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/pagamentos/{id}", pagamentoHandler.Deletar).Methods("DELETE")
	protegido.HandleFunc("/pagamentos/{id}/processar", pagamentoHandler.Processar).Methods("POST")

	// Rotas de manutenções
	protegido.HandleFunc("/manutencoes", manutencaoHandler.Criar).Methods("POST")
	protegido.HandleFunc("/manutencoes", manutencaoHandler.ListarTodas).Methods("GET")
	protegido.HandleFunc("/manutencoes/veiculo/{veiculoId}", manutencaoHandler.ListarPorVeiculo).Methods("GET")
	protegido.HandleFunc("/manutencoes/veiculo/{veiculoId}/resumo", manutencaoHandler.ResumoGastos).Methods("GET")
	protegido.HandleFunc("/manutencoes/{id}", manutencaoHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/manutencoes/{id}", manutencaoHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/manutencoes/{id}", manutencaoHandler.Deletar).Methods("DELETE")

	// Rotas de vistorias
	protegido.HandleFunc("/vistorias", vistoriaHandler.Criar).Methods("POST")
	protegido.HandleFunc("/vistorias", vistoriaHandler.ListarTodas).Methods("GET")
	protegido.HandleFunc("/vistorias/upload", vistoriaHandler.UploadFoto).Methods("POST")
	protegido.HandleFunc("/vistorias/veiculo/{veiculoId}", vistoriaHandler.ListarPorVeiculo).Methods("GET")
	protegido.HandleFunc("/vistorias/{id}", vistoriaHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/vistorias/{id}", vistoriaHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/vistorias/{id}", vistoriaHandler.Deletar).Methods("DELETE")

	// Geração de contrato em PDF
	protegido.HandleFunc("/contratos/gerar", contratoHandler.Gerar).Methods("POST")

	// Painel
	protegido.HandleFunc("/dashboard/resumo", dashboardHandler.Resumo).Methods("GET")

	porta := utils.GetEnv("PORT", "3001")
	handler := cors.AllowAll().Handler(r)

	log.Printf("Servidor rodando em http://localhost:%s", porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
