package services

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	"github.com/Esamwell/mthubv2/internal/domain/errors"
)

var _ = Describe("SolicitacaoService", func() {
	var (
		repo      *fakeSolicitacaoRepo
		publisher *capturingPublisher
		service   *SolicitacaoService
		ctx       context.Context
		agora     time.Time
	)

	validInput := func() SolicitacaoInput {
		return SolicitacaoInput{
			Titulo:      "Vídeo institucional",
			CategoriaID: "cat-1",
			ClienteID:   "cli-1",
		}
	}

	BeforeEach(func() {
		repo = newFakeSolicitacaoRepo()
		publisher = &capturingPublisher{}
		service = NewSolicitacaoService(repo, publisher, noopLogger{})
		agora = time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return agora }
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("aplica os defaults pendente/media", func() {
			created, err := service.Create(ctx, validInput())

			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal(entities.StatusPendente))
			Expect(created.Prioridade).To(Equal(entities.PrioridadeMedia))
			Expect(created.ID).NotTo(BeEmpty())
		})

		It("respeita status e prioridade informados", func() {
			input := validInput()
			input.Status = "em_andamento"
			input.Prioridade = "urgente"

			created, err := service.Create(ctx, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal(entities.StatusEmAndamento))
			Expect(created.Prioridade).To(Equal(entities.PrioridadeUrgente))
		})

		It("rejeita status fora do vocabulário", func() {
			input := validInput()
			input.Status = "arquivada"

			_, err := service.Create(ctx, input)

			Expect(err).To(MatchError(errors.ErrStatusInvalido))
		})

		It("rejeita prioridade fora do vocabulário", func() {
			input := validInput()
			input.Prioridade = "critica"

			_, err := service.Create(ctx, input)

			Expect(err).To(MatchError(errors.ErrPrioridadeInvalida))
		})

		It("converte dataEntrega simples em prazo", func() {
			input := validInput()
			input.DataEntrega = "2025-08-01"

			created, err := service.Create(ctx, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(created.DataPrazo).NotTo(BeNil())
			Expect(*created.DataPrazo).To(Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)))
		})

		It("trata dataEntrega vazia como prazo nulo", func() {
			created, err := service.Create(ctx, validInput())

			Expect(err).NotTo(HaveOccurred())
			Expect(created.DataPrazo).To(BeNil())
		})

		It("rejeita dataEntrega mal formada", func() {
			input := validInput()
			input.DataEntrega = "01/08/2025"

			_, err := service.Create(ctx, input)

			Expect(err).To(MatchError(errors.ErrDataInvalida))
		})

		It("publica o evento de criação", func() {
			created, err := service.Create(ctx, validInput())

			Expect(err).NotTo(HaveOccurred())
			Expect(publisher.events).To(HaveLen(1))
			event := publisher.events[0].(SolicitacaoEvent)
			Expect(event.Tipo).To(Equal(EventoSolicitacaoCriada))
			Expect(event.ID).To(Equal(created.ID))
		})
	})

	Describe("Update", func() {
		var existente *entities.Solicitacao

		BeforeEach(func() {
			var err error
			existente, err = service.Create(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
			publisher.events = nil
		})

		It("substitui os campos mutáveis", func() {
			input := validInput()
			input.Titulo = "Vídeo revisado"
			input.Status = "em_andamento"
			input.Prioridade = "alta"

			updated, err := service.Update(ctx, existente.ID, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Titulo).To(Equal("Vídeo revisado"))
			Expect(updated.Status).To(Equal(entities.StatusEmAndamento))
			Expect(updated.Prioridade).To(Equal(entities.PrioridadeAlta))
		})

		It("carimba data_conclusao ao concluir", func() {
			input := validInput()
			input.Status = "concluida"
			input.Prioridade = "media"

			updated, err := service.Update(ctx, existente.ID, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.DataConclusao).NotTo(BeNil())
			Expect(*updated.DataConclusao).To(Equal(agora))
		})

		It("não limpa o carimbo ao sair de concluida", func() {
			input := validInput()
			input.Status = "concluida"
			input.Prioridade = "media"
			_, err := service.Update(ctx, existente.ID, input)
			Expect(err).NotTo(HaveOccurred())

			input.Status = "em_andamento"
			updated, err := service.Update(ctx, existente.ID, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.StatusEmAndamento))
			Expect(updated.DataConclusao).NotTo(BeNil())
		})

		It("retorna not found para id inexistente", func() {
			input := validInput()
			input.Status = "pendente"
			input.Prioridade = "media"

			_, err := service.Update(ctx, "nao-existe", input)

			Expect(err).To(MatchError(errors.ErrSolicitacaoNotFound))
		})

		It("publica o evento de atualização", func() {
			input := validInput()
			input.Status = "pendente"
			input.Prioridade = "media"

			_, err := service.Update(ctx, existente.ID, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(publisher.events).To(HaveLen(1))
			event := publisher.events[0].(SolicitacaoEvent)
			Expect(event.Tipo).To(Equal(EventoSolicitacaoAtualizada))
		})
	})

	Describe("Calendario", func() {
		criaComPrazo := func(titulo, prazo string) {
			input := validInput()
			input.Titulo = titulo
			input.DataEntrega = prazo
			_, err := service.Create(ctx, input)
			Expect(err).NotTo(HaveOccurred())
		}

		It("retorna apenas o mês pedido, em ordem de prazo", func() {
			criaComPrazo("fim de julho", "2025-07-31")
			criaComPrazo("agosto", "2025-08-02")
			criaComPrazo("início de julho", "2025-07-01")
			criaComPrazo("sem prazo", "")

			result, err := service.Calendario(ctx, 7, 2025)

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
			Expect(result[0].Titulo).To(Equal("início de julho"))
			Expect(result[1].Titulo).To(Equal("fim de julho"))
		})

		It("rejeita mês fora de 1-12", func() {
			_, err := service.Calendario(ctx, 13, 2025)
			Expect(err).To(MatchError(errors.ErrMesAnoObrigatorios))

			_, err = service.Calendario(ctx, 0, 2025)
			Expect(err).To(MatchError(errors.ErrMesAnoObrigatorios))
		})

		It("rejeita ano ausente", func() {
			_, err := service.Calendario(ctx, 7, 0)
			Expect(err).To(MatchError(errors.ErrMesAnoObrigatorios))
		})
	})

	Describe("Delete", func() {
		It("remove e publica o evento", func() {
			created, err := service.Create(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
			publisher.events = nil

			Expect(service.Delete(ctx, created.ID)).To(Succeed())

			_, err = service.Get(ctx, created.ID)
			Expect(err).To(MatchError(errors.ErrSolicitacaoNotFound))

			Expect(publisher.events).To(HaveLen(1))
			event := publisher.events[0].(SolicitacaoEvent)
			Expect(event.Tipo).To(Equal(EventoSolicitacaoExcluida))
		})

		It("retorna not found para id inexistente", func() {
			err := service.Delete(ctx, "nao-existe")
			Expect(err).To(MatchError(errors.ErrSolicitacaoNotFound))
		})
	})

	Describe("CountByStatus", func() {
		It("conta por status validado", func() {
			input := validInput()
			input.Status = "em_andamento"
			_, err := service.Create(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Create(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			count, err := service.CountByStatus(ctx, "em_andamento")

			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("rejeita status desconhecido", func() {
			_, err := service.CountByStatus(ctx, "arquivada")
			Expect(err).To(MatchError(errors.ErrStatusInvalido))
		})
	})

	Describe("ListRecent", func() {
		It("limita a 5 solicitações", func() {
			for i := 0; i < 7; i++ {
				_, err := service.Create(ctx, validInput())
				Expect(err).NotTo(HaveOccurred())
			}

			result, err := service.ListRecent(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(5))
		})
	})
})
