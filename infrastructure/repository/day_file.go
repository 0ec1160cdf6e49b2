package repository

import (
	"context"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/rk-metrics/internal/domain"
	"github.com/vfg2006/rk-metrics/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StdinSource faz o repositório ler o conjunto de dias da entrada padrão
const StdinSource = "-"

var (
	ErrSourceNotFound = errors.New("day source not found")
	ErrInvalidSource  = errors.New("invalid day source")
)

//go:generate mockgen -source=day_file.go -destination=mocks/day_repository.go -package=mocks

type DayRepository interface {
	LoadDays(ctx context.Context, source string) (*domain.DaySet, error)
}

// DayFileRepository lê o JSON gerado pelo parser do relatório "По дням"
type DayFileRepository struct {
	stdin io.Reader
}

func NewDayFileRepository(stdin io.Reader) *DayFileRepository {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &DayFileRepository{stdin: stdin}
}

func (r *DayFileRepository) LoadDays(ctx context.Context, source string) (*domain.DaySet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.read(source)
	if err != nil {
		return nil, err
	}

	set := &domain.DaySet{}
	if err := json.Unmarshal(data, set); err != nil {
		return nil, errors.Wrapf(ErrInvalidSource, "%s: %v", source, err)
	}
	if set.Details == nil {
		set.Details = domain.DetailsByDate{}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source": source,
		"days":   len(set.Days),
	}).Debug("Dias carregados")

	return set, nil
}

func (r *DayFileRepository) read(source string) ([]byte, error) {
	if source == StdinSource {
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSourceNotFound, "%s", source)
		}
		return nil, errors.Wrapf(err, "reading %s", source)
	}
	return data, nil
}
