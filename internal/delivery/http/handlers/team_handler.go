package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/LavaJover/football-team-service/internal/delivery/http/middleware"
	teamdto "github.com/LavaJover/football-team-service/internal/delivery/http/dto/team"
	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/LavaJover/football-team-service/internal/usecase"
	ucdto "github.com/LavaJover/football-team-service/internal/usecase/dto/team"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	maxBodyBytes = 1 << 20
	maxPageSize  = 2000
)

type TeamHandler struct {
	uc       usecase.TeamUsecase
	validate *validator.Validate
}

func NewTeamHandler(uc usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{
		uc:       uc,
		validate: newValidator(),
	}
}

// ListTeams handles GET /api/equipes?page=&size=&sortBy=&sortDir=
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	req, errs := parsePageRequest(r)
	if len(errs) > 0 {
		writeValidationError(w, errs, logger)
		return
	}

	page, err := h.uc.ListTeams(r.Context(), req)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teamdto.ToTeamPageResponse(page), logger)
}

// CreateTeam handles POST /api/equipes
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	var body teamdto.CreateTeamRequest
	if !h.decodeAndValidate(w, r, &body) {
		return
	}

	input := &ucdto.CreateTeamInput{
		Name:    body.Name,
		Acronym: body.Acronym,
		Budget:  *body.Budget,
		Players: make([]ucdto.CreatePlayerInput, len(body.Joueurs)),
	}
	for i, joueur := range body.Joueurs {
		input.Players[i] = ucdto.CreatePlayerInput{Name: joueur.Name, Position: joueur.Position}
	}

	team, err := h.uc.CreateTeam(r.Context(), input)
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, teamdto.ToTeamResponse(team), logger)
}

// TransferPlayer handles POST /api/equipes/transfer
func (h *TeamHandler) TransferPlayer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	var body teamdto.TransferRequest
	if !h.decodeAndValidate(w, r, &body) {
		return
	}

	confirmation, err := h.uc.TransferPlayer(r.Context(), &ucdto.TransferPlayerInput{
		PlayerID:          *body.JoueurID,
		DestinationTeamID: *body.NouvelleEquipeID,
	})
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teamdto.ToTransferResponse(confirmation), logger)
}

// GetTeamByAcronym handles GET /api/equipes/{acronym}
func (h *TeamHandler) GetTeamByAcronym(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	team, err := h.uc.GetTeamByAcronym(r.Context(), chi.URLParam(r, "acronym"))
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teamdto.ToTeamResponse(team), logger)
}

func (h *TeamHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	logger := middleware.LoggerFromContext(r.Context())

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		logger.Debug("malformed request body", "error", err)
		writeValidationError(w, ValidationErrors{"body": "malformed JSON request"}, logger)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var errs ValidationErrors
		if errors.As(toValidationErrors(err), &errs) {
			writeValidationError(w, errs, logger)
			return false
		}
		logger.Error("request validation failed", "error", err)
		writeError(w, http.StatusInternalServerError, unexpectedErrorMessage, logger)
		return false
	}
	return true
}

func (h *TeamHandler) writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	logger := middleware.LoggerFromContext(r.Context())

	switch {
	case errors.Is(err, domain.ErrTeamAlreadyExists):
		writeError(w, http.StatusConflict, err.Error(), logger)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error(), logger)
	default:
		logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, unexpectedErrorMessage, logger)
	}
}

func parsePageRequest(r *http.Request) (domain.PageRequest, ValidationErrors) {
	query := r.URL.Query()
	errs := ValidationErrors{}

	req := domain.PageRequest{
		Page: domain.DefaultPage,
		Size: domain.DefaultSize,
		Sort: domain.Sort{
			Field:     domain.ParseSortField(query.Get("sortBy")),
			Direction: domain.ParseSortDirection(query.Get("sortDir")),
		},
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			errs["page"] = "must be a non-negative integer"
		} else {
			req.Page = page
		}
	}
	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			errs["size"] = "must be a positive integer"
		} else {
			req.Size = min(size, maxPageSize)
		}
	}
	if _, bad := errs["page"]; !bad && req.Page > math.MaxInt/req.Size {
		errs["page"] = "is out of range"
	}
	return req, errs
}
