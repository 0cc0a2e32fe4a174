package command

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/rolodex/internal/domain"
	"github.com/cristianoliveira/rolodex/internal/model"
	"github.com/cristianoliveira/rolodex/internal/search"
)

// DefaultExportFile is the file name used when export is given no path.
const DefaultExportFile = "contacts.csv"

// Model is the contacts state a command executes against.
type Model interface {
	HasPerson(p domain.Person) bool
	AddPerson(p domain.Person) error
	DeletePerson(p domain.Person) error
	SetPerson(target, edited domain.Person) error
	SetPersons(persons []domain.Person)
	Persons() []domain.Person
	SetPredicate(pred domain.Predicate)
	ApplySort(order domain.SortOrder)
	ResetSort()
	View() []domain.Person
}

// Exporter writes persons to path, choosing the format from its extension.
type Exporter interface {
	Export(path string, persons []domain.Person) error
}

// Env is everything a command needs to execute.
type Env struct {
	Model     Model
	Registry  *Registry
	Exporter  Exporter
	ExportDir string
	Now       func() time.Time
}

func (env *Env) now() time.Time {
	if env.Now == nil {
		return time.Now()
	}
	return env.Now()
}

// Execute runs cmd against env.
func Execute(cmd Command, env *Env) (Result, error) {
	switch c := cmd.(type) {
	case Add:
		return executeAdd(c, env)
	case Delete:
		return executeDelete(c, env)
	case Edit:
		return executeEdit(c, env)
	case Find:
		return executeFind(c, env)
	case List:
		env.Model.SetPredicate(domain.ShowAll)
		env.Model.ResetSort()
		return Result{Feedback: MessageListSuccess}, nil
	case Sort:
		env.Model.ApplySort(c.Order)
		if c.Order == domain.SortByRecent {
			return Result{Feedback: MessageSortByRecent}, nil
		}
		return Result{Feedback: MessageSortByName}, nil
	case Pin:
		return executePin(c, env)
	case Unpin:
		return executeUnpin(c, env)
	case RenameTag:
		return executeRenameTag(c, env)
	case Clear:
		return NewPendingResult(MessageClearPrompt, func(env *Env) (Result, error) {
			env.Model.SetPersons(nil)
			return Result{Feedback: MessageClearSuccess}, nil
		}), nil
	case Export:
		return executeExport(c, env)
	case Help:
		return executeHelp(c, env)
	case Exit:
		return Result{Feedback: MessageExit, Exit: true}, nil
	case Confirm:
		return executeConfirm(c, env)
	default:
		return Result{}, NewCommandError(MessageUnsupportedCommand, cmd.Word())
	}
}

// personAt returns the person at a one-based index of the current view.
func personAt(env *Env, index int) (domain.Person, error) {
	view := env.Model.View()
	if index < 1 || index > len(view) {
		return domain.Person{}, NewCommandError(MessageInvalidIndex)
	}
	return view[index-1], nil
}

func executeAdd(c Add, env *Env) (Result, error) {
	if err := env.Model.AddPerson(c.Person); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, NewCommandError(MessageDuplicatePerson)
		}
		return Result{}, &CommandError{Message: err.Error(), Err: err}
	}
	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, c.Person.Name)}, nil
}

func executeDelete(c Delete, env *Env) (Result, error) {
	target, err := personAt(env, c.Index)
	if err != nil {
		return Result{}, err
	}
	prompt := fmt.Sprintf(MessageDeletePrompt, target.Name)
	return NewPendingResult(prompt, func(env *Env) (Result, error) {
		if err := env.Model.DeletePerson(target); err != nil {
			return Result{}, &CommandError{Message: MessageInvalidIndex, Err: err}
		}
		return Result{Feedback: fmt.Sprintf(MessageDeleteSuccess, target.Name)}, nil
	}), nil
}

func executeEdit(c Edit, env *Env) (Result, error) {
	target, err := personAt(env, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Fields.Apply(target)
	if err := env.Model.SetPerson(target, edited); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, NewCommandError(MessageDuplicatePerson)
		}
		return Result{}, &CommandError{Message: MessageInvalidIndex, Err: err}
	}
	env.Model.SetPredicate(domain.ShowAll)
	return Result{Feedback: fmt.Sprintf(MessageEditSuccess, edited.Name)}, nil
}

func executeFind(c Find, env *Env) (Result, error) {
	var pred domain.Predicate
	switch c.Mode {
	case FindByTag:
		pred = search.Predicate(search.NewTokenProvider(search.WithFields([]string{search.FieldTags})), strings.Join(c.Keywords, " "))
	case FindAnywhere:
		provider := search.NewSubstringProvider(search.WithFields(search.AllFields))
		keywords := c.Keywords
		pred = func(p domain.Person) bool {
			for _, k := range keywords {
				if provider.Match(p, k) {
					return true
				}
			}
			return false
		}
	default:
		pred = search.Predicate(search.NewTokenProvider(), strings.Join(c.Keywords, " "))
	}
	env.Model.SetPredicate(pred)
	return Result{Feedback: fmt.Sprintf(MessagePersonsListed, len(env.Model.View()))}, nil
}

func executePin(c Pin, env *Env) (Result, error) {
	target, err := personAt(env, c.Index)
	if err != nil {
		return Result{}, err
	}
	if target.Pinned {
		return Result{}, NewCommandError(MessageAlreadyPinned, target.Name)
	}
	if err := env.Model.SetPerson(target, target.WithPin(env.now())); err != nil {
		return Result{}, &CommandError{Message: MessageInvalidIndex, Err: err}
	}
	return Result{Feedback: fmt.Sprintf(MessagePinSuccess, target.Name)}, nil
}

func executeUnpin(c Unpin, env *Env) (Result, error) {
	target, err := personAt(env, c.Index)
	if err != nil {
		return Result{}, err
	}
	if !target.Pinned {
		return Result{}, NewCommandError(MessageNotPinned, target.Name)
	}
	if err := env.Model.SetPerson(target, target.WithoutPin()); err != nil {
		return Result{}, &CommandError{Message: MessageInvalidIndex, Err: err}
	}
	return Result{Feedback: fmt.Sprintf(MessageUnpinSuccess, target.Name)}, nil
}

func executeRenameTag(c RenameTag, env *Env) (Result, error) {
	persons := env.Model.Persons()
	renamed := 0
	for i, p := range persons {
		if p.HasTag(c.Old) {
			persons[i] = p.WithTagRenamed(c.Old, c.New)
			renamed++
		}
	}
	if renamed == 0 {
		return Result{}, NewCommandError(MessageTagNotFound, c.Old)
	}
	env.Model.SetPersons(persons)
	return Result{Feedback: fmt.Sprintf(MessageTagRenamed, c.Old, c.New, renamed)}, nil
}

func executeExport(c Export, env *Env) (Result, error) {
	if env.Exporter == nil {
		return Result{}, NewCommandError(MessageNoExporter)
	}
	path := c.Path
	if path == "" {
		path = filepath.Join(env.ExportDir, DefaultExportFile)
	}
	persons := env.Model.Persons()
	if err := env.Exporter.Export(path, persons); err != nil {
		return Result{}, WrapCommandError(err, MessageExportFailed)
	}
	return Result{Feedback: fmt.Sprintf(MessageExportSuccess, len(persons), path)}, nil
}

func executeHelp(c Help, env *Env) (Result, error) {
	if c.Topic == "" {
		return Result{Feedback: MessageHelpWindowOpened, ShowHelp: true}, nil
	}
	if env.Registry != nil {
		if h, ok := env.Registry.Help(c.Topic); ok {
			return Result{Feedback: h.String(), ShowHelp: true}, nil
		}
	}
	return Result{}, NewParseError(MessageUnknownCommand)
}

func executeConfirm(c Confirm, env *Env) (Result, error) {
	if c.Pending == nil {
		if c.onComplete != nil {
			c.onComplete()
		}
		return Result{}, NewCommandError(MessageNothingPending)
	}

	switch strings.ToLower(strings.TrimSpace(c.Input)) {
	case "y", "yes":
		result, err := c.Pending.resolve(env)
		if c.onComplete != nil {
			c.onComplete()
		}
		return result, err
	case "n", "no":
		if c.onComplete != nil {
			c.onComplete()
		}
		return Result{Feedback: MessageCancelled}, nil
	default:
		return Result{}, NewCommandError("%s\n%s", MessageInvalidConfirmation, c.Pending.Prompt)
	}
}
