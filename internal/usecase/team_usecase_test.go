package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/LavaJover/football-team-service/internal/infrastructure/metrics"
	teamdto "github.com/LavaJover/football-team-service/internal/usecase/dto/team"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

// stubStore keeps aggregates in memory and hands out the stored pointers directly.
type stubStore struct {
	teams       map[int64]*domain.Team
	freeAgents  map[int64]*domain.Player
	nextID      int64
	saveErr     error
	findErr     error
	saveCalls   int
	lastPageReq domain.PageRequest
}

func newStubStore() *stubStore {
	return &stubStore{
		teams:      map[int64]*domain.Team{},
		freeAgents: map[int64]*domain.Player{},
	}
}

func (s *stubStore) WithinTx(ctx context.Context, fn func(store domain.Store) error) error {
	return fn(s)
}

func (s *stubStore) Teams() domain.TeamRepository     { return stubTeams{s} }
func (s *stubStore) Players() domain.PlayerRepository { return stubPlayers{s} }

func (s *stubStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *stubStore) seedTeam(name, acronym string, players ...string) *domain.Team {
	team := domain.NewTeam(name, acronym, decimal.NewFromInt(1000))
	team.ID = s.id()
	for _, name := range players {
		p := domain.NewPlayer(name, "Forward")
		p.ID = s.id()
		team.AddPlayer(p)
	}
	s.teams[team.ID] = team
	return team
}

type stubTeams struct{ s *stubStore }

func (r stubTeams) ExistsByAcronym(_ context.Context, acronym string) (bool, error) {
	if r.s.findErr != nil {
		return false, r.s.findErr
	}
	for _, t := range r.s.teams {
		if t.Acronym == acronym {
			return true, nil
		}
	}
	return false, nil
}

func (r stubTeams) FindByAcronym(_ context.Context, acronym string) (*domain.Team, bool, error) {
	for _, t := range r.s.teams {
		if t.Acronym == acronym {
			return t, true, nil
		}
	}
	return nil, false, nil
}

func (r stubTeams) FindByID(_ context.Context, teamID int64) (*domain.Team, bool, error) {
	t, ok := r.s.teams[teamID]
	return t, ok, nil
}

func (r stubTeams) FindAll(_ context.Context, req domain.PageRequest) (*domain.Page[*domain.Team], error) {
	r.s.lastPageReq = req
	var teams []*domain.Team
	for _, t := range r.s.teams {
		teams = append(teams, t)
	}
	return domain.NewPage(teams, req, int64(len(teams))), nil
}

func (r stubTeams) Save(_ context.Context, team *domain.Team) error {
	r.s.saveCalls++
	if r.s.saveErr != nil {
		return r.s.saveErr
	}
	if team.ID == 0 {
		team.ID = r.s.id()
	}
	for _, p := range team.Players {
		if p.ID == 0 {
			p.ID = r.s.id()
		}
		delete(r.s.freeAgents, p.ID)
	}
	r.s.teams[team.ID] = team
	team.ClearRemoved()
	return nil
}

type stubPlayers struct{ s *stubStore }

func (r stubPlayers) FindByID(_ context.Context, playerID int64) (*domain.Player, bool, error) {
	if r.s.findErr != nil {
		return nil, false, r.s.findErr
	}
	if p, ok := r.s.freeAgents[playerID]; ok {
		return p, true, nil
	}
	for _, t := range r.s.teams {
		for _, p := range t.Players {
			if p.ID == playerID {
				return p, true, nil
			}
		}
	}
	return nil, false, nil
}

func (r stubPlayers) Save(_ context.Context, player *domain.Player) error {
	if player.ID == 0 {
		player.ID = r.s.id()
	}
	if player.Team == nil {
		r.s.freeAgents[player.ID] = player
	}
	return nil
}

type stubPublisher struct {
	mu     sync.Mutex
	events []domain.TransferEvent
	err    error
}

func (p *stubPublisher) PublishTransfer(_ context.Context, event domain.TransferEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func newUsecase(store *stubStore, pub domain.TransferPublisher) *DefaultTeamUsecase {
	return NewDefaultTeamUsecase(store, pub, metrics.NewTeamMetrics(prometheus.NewRegistry()))
}

func TestCreateTeam(t *testing.T) {
	store := newStubStore()
	uc := newUsecase(store, nil)

	team, err := uc.CreateTeam(context.Background(), &teamdto.CreateTeamInput{
		Name:    "OGC Nice",
		Acronym: "OGCN",
		Budget:  decimal.RequireFromString("1000000"),
		Players: []teamdto.CreatePlayerInput{
			{Name: "Jean-Clair Todibo", Position: "Defender"},
			{Name: "Khéphren Thuram", Position: "Midfielder"},
		},
	})
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	if team.ID == 0 {
		t.Fatal("expected generated team id")
	}
	if len(team.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(team.Players))
	}
	for _, p := range team.Players {
		if p.ID == 0 || p.Team != team {
			t.Fatalf("player %q not persisted or not attached: %+v", p.Name, p)
		}
	}
	if got := testutil.ToFloat64(uc.Metrics.TeamsCreatedTotal); got != 1 {
		t.Fatalf("expected teams_created_total 1, got %v", got)
	}
}

func TestCreateTeamWithoutPlayers(t *testing.T) {
	uc := newUsecase(newStubStore(), nil)

	team, err := uc.CreateTeam(context.Background(), &teamdto.CreateTeamInput{
		Name: "Stade Rennais", Acronym: "SRFC", Budget: decimal.NewFromInt(5),
	})
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if team.Players == nil || len(team.Players) != 0 {
		t.Fatalf("expected empty player list, got %v", team.Players)
	}
}

func TestCreateTeamDuplicateAcronym(t *testing.T) {
	store := newStubStore()
	store.seedTeam("OGC Nice", "OGCN")
	uc := newUsecase(store, nil)

	_, err := uc.CreateTeam(context.Background(), &teamdto.CreateTeamInput{
		Name: "Other", Acronym: "OGCN", Budget: decimal.NewFromInt(1),
	})
	if !errors.Is(err, domain.ErrTeamAlreadyExists) {
		t.Fatalf("expected ErrTeamAlreadyExists, got %v", err)
	}
	if want := "Une équipe avec l'acronyme OGCN existe déjà"; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
	if store.saveCalls != 0 {
		t.Fatalf("expected no write, got %d saves", store.saveCalls)
	}
	if got := testutil.ToFloat64(uc.Metrics.AcronymConflictsTotal); got != 1 {
		t.Fatalf("expected one conflict recorded, got %v", got)
	}
}

func TestCreateTeamUniqueViolationOnInsert(t *testing.T) {
	store := newStubStore()
	store.saveErr = domain.ErrTeamAlreadyExists
	uc := newUsecase(store, nil)

	_, err := uc.CreateTeam(context.Background(), &teamdto.CreateTeamInput{
		Name: "Racer", Acronym: "RACE", Budget: decimal.NewFromInt(1),
	})
	if !errors.Is(err, domain.ErrTeamAlreadyExists) {
		t.Fatalf("expected ErrTeamAlreadyExists, got %v", err)
	}
	if want := "Une équipe avec l'acronyme RACE existe déjà"; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestCreateTeamStoreFailure(t *testing.T) {
	store := newStubStore()
	store.findErr = errors.New("connection reset")
	uc := newUsecase(store, nil)

	_, err := uc.CreateTeam(context.Background(), &teamdto.CreateTeamInput{
		Name: "X", Acronym: "X", Budget: decimal.NewFromInt(1),
	})
	if err == nil || errors.Is(err, domain.ErrTeamAlreadyExists) || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected an unexpected error, got %v", err)
	}
}

func TestTransferPlayer(t *testing.T) {
	store := newStubStore()
	nice := store.seedTeam("OGC Nice", "OGCN", "Terem Moffi")
	om := store.seedTeam("Olympique de Marseille", "OM")
	player := nice.Players[0]
	pub := &stubPublisher{}
	uc := newUsecase(store, pub)

	got, err := uc.TransferPlayer(context.Background(), &teamdto.TransferPlayerInput{
		PlayerID: player.ID, DestinationTeamID: om.ID,
	})
	if err != nil {
		t.Fatalf("TransferPlayer: %v", err)
	}
	uc.Wait()

	want := domain.NewTransferConfirmation("Terem Moffi", "Forward", "OGC Nice", "Olympique de Marseille")
	if *got != want {
		t.Fatalf("unexpected confirmation:\n got %+v\nwant %+v", *got, want)
	}
	if nice.HasPlayer(player) {
		t.Fatal("player still listed in origin team")
	}
	if !om.HasPlayer(player) || player.Team != om {
		t.Fatal("player not attached to destination")
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(pub.events))
	}
	event := pub.events[0]
	if event.PlayerID != player.ID || event.OriginTeam != "OGC Nice" || event.DestinationTeamID != om.ID || event.EventID == "" {
		t.Fatalf("unexpected event %+v", event)
	}
	if n := testutil.ToFloat64(uc.Metrics.TransfersTotal.WithLabelValues("team")); n != 1 {
		t.Fatalf("expected one team transfer recorded, got %v", n)
	}
}

func TestTransferFreeAgent(t *testing.T) {
	store := newStubStore()
	om := store.seedTeam("Olympique de Marseille", "OM")
	agent := domain.NewPlayer("Jordan Ayew", "Winger")
	agent.ID = store.id()
	store.freeAgents[agent.ID] = agent
	uc := newUsecase(store, nil)

	got, err := uc.TransferPlayer(context.Background(), &teamdto.TransferPlayerInput{
		PlayerID: agent.ID, DestinationTeamID: om.ID,
	})
	if err != nil {
		t.Fatalf("TransferPlayer: %v", err)
	}
	if got.OriginTeam != domain.FreeAgent {
		t.Fatalf("expected origin %q, got %q", domain.FreeAgent, got.OriginTeam)
	}
	if !strings.Contains(got.Message, "from Free Agent!") {
		t.Fatalf("unexpected message %q", got.Message)
	}
	if agent.Team != om {
		t.Fatal("free agent not attached")
	}
}

func TestTransferToCurrentTeam(t *testing.T) {
	store := newStubStore()
	nice := store.seedTeam("OGC Nice", "OGCN", "Terem Moffi")
	player := nice.Players[0]
	uc := newUsecase(store, nil)

	got, err := uc.TransferPlayer(context.Background(), &teamdto.TransferPlayerInput{
		PlayerID: player.ID, DestinationTeamID: nice.ID,
	})
	if err != nil {
		t.Fatalf("TransferPlayer: %v", err)
	}
	if got.OriginTeam != "OGC Nice" || got.DestinationTeam != "OGC Nice" {
		t.Fatalf("unexpected confirmation %+v", got)
	}
	if len(nice.Players) != 1 || player.Team != nice {
		t.Fatalf("expected player to remain exactly once, got %d", len(nice.Players))
	}
}

func TestTransferPlayerNotFound(t *testing.T) {
	store := newStubStore()
	om := store.seedTeam("Olympique de Marseille", "OM")
	uc := newUsecase(store, nil)

	_, err := uc.TransferPlayer(context.Background(), &teamdto.TransferPlayerInput{
		PlayerID: 999, DestinationTeamID: om.ID,
	})
	if !errors.Is(err, domain.ErrPlayerNotFound) || !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	if want := "Joueur non trouvé avec l'ID: 999"; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
	if store.saveCalls != 0 {
		t.Fatal("no write expected")
	}
}

func TestTransferTeamNotFound(t *testing.T) {
	store := newStubStore()
	nice := store.seedTeam("OGC Nice", "OGCN", "Terem Moffi")
	player := nice.Players[0]
	uc := newUsecase(store, nil)

	_, err := uc.TransferPlayer(context.Background(), &teamdto.TransferPlayerInput{
		PlayerID: player.ID, DestinationTeamID: 999,
	})
	if !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
	if want := "Équipe non trouvée avec l'ID: 999"; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
	if player.Team != nice || !nice.HasPlayer(player) {
		t.Fatal("player must stay with its team")
	}
}

func TestTransferPublishFailureIsNotFatal(t *testing.T) {
	store := newStubStore()
	nice := store.seedTeam("OGC Nice", "OGCN", "Terem Moffi")
	om := store.seedTeam("Olympique de Marseille", "OM")
	pub := &stubPublisher{err: errors.New("broker down")}
	uc := newUsecase(store, pub)

	if _, err := uc.TransferPlayer(context.Background(), &teamdto.TransferPlayerInput{
		PlayerID: nice.Players[0].ID, DestinationTeamID: om.ID,
	}); err != nil {
		t.Fatalf("TransferPlayer: %v", err)
	}
	uc.Wait()

	if got := testutil.ToFloat64(uc.Metrics.TransferEventsFailed); got != 1 {
		t.Fatalf("expected one failed event, got %v", got)
	}
}

func TestTransferSaveFailure(t *testing.T) {
	store := newStubStore()
	nice := store.seedTeam("OGC Nice", "OGCN", "Terem Moffi")
	om := store.seedTeam("Olympique de Marseille", "OM")
	store.saveErr = errors.New("disk full")
	pub := &stubPublisher{}
	uc := newUsecase(store, pub)

	_, err := uc.TransferPlayer(context.Background(), &teamdto.TransferPlayerInput{
		PlayerID: nice.Players[0].ID, DestinationTeamID: om.ID,
	})
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	uc.Wait()
	if len(pub.events) != 0 {
		t.Fatal("no event expected for a failed transfer")
	}
}

func TestListTeams(t *testing.T) {
	store := newStubStore()
	store.seedTeam("A", "A")
	store.seedTeam("B", "B")
	uc := newUsecase(store, nil)

	page, err := uc.ListTeams(context.Background(), domain.PageRequest{
		Page: 0, Size: 10, Sort: domain.Sort{Field: domain.SortField("bogus"), Direction: domain.Desc},
	})
	if err != nil {
		t.Fatalf("ListTeams: %v", err)
	}
	if page.TotalElements != 2 || page.TotalPages != 1 {
		t.Fatalf("unexpected totals %d/%d", page.TotalElements, page.TotalPages)
	}
	if store.lastPageReq.Sort.Field != domain.SortByName || store.lastPageReq.Sort.Direction != domain.Desc {
		t.Fatalf("unexpected sort passed to store: %+v", store.lastPageReq.Sort)
	}
}

func TestGetTeamByAcronym(t *testing.T) {
	store := newStubStore()
	nice := store.seedTeam("OGC Nice", "OGCN")
	uc := newUsecase(store, nil)

	got, err := uc.GetTeamByAcronym(context.Background(), "OGCN")
	if err != nil || got != nice {
		t.Fatalf("expected nice, got %v, %v", got, err)
	}

	if _, err := uc.GetTeamByAcronym(context.Background(), "PSG"); !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
