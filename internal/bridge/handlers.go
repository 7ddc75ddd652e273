package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/seedtail/notefold/internal/appconfig"
	"github.com/seedtail/notefold/internal/icon"
	"github.com/seedtail/notefold/internal/logging"
	"github.com/seedtail/notefold/internal/migrate"
	"github.com/seedtail/notefold/internal/store"
)

// Backend bundles the stores behind the bridge commands.
type Backend struct {
	appConfig *appconfig.Store
	todos     *store.Store
	mover     *migrate.Engine
	icons     icon.Provider
}

// NewBackend wires the stores against the given config directory. A nil
// logger discards diagnostics; a nil icon provider uses the platform default.
func NewBackend(configDir string, icons icon.Provider, logger *log.Logger) *Backend {
	if logger == nil {
		logger = logging.Discard()
	}
	if icons == nil {
		icons = icon.Default()
	}
	return &Backend{
		appConfig: appconfig.NewStore(configDir, logger),
		todos:     store.New(logger),
		mover:     migrate.New(logger),
		icons:     icons,
	}
}

// Register binds every backend command on the server.
func (b *Backend) Register(s *Server) {
	s.Register("get_app_config", b.getAppConfig)
	s.Register("save_app_config", b.saveAppConfig)
	s.Register("get_todos", b.getTodos)
	s.Register("save_todos", b.saveTodos)
	s.Register("create_todo_folder", b.createTodoFolder)
	s.Register("save_todo_detail", b.saveTodoDetail)
	s.Register("get_todo_detail", b.getTodoDetail)
	s.Register("move_data", b.moveData)
	s.Register("get_file_icon", b.getFileIcon)
}

type dataPathParams struct {
	DataPath string `json:"data_path"`
}

type saveConfigParams struct {
	Config appconfig.Config `json:"config"`
}

type saveTodosParams struct {
	DataPath string           `json:"data_path"`
	Todos    []store.TodoItem `json:"todos"`
}

type detailParams struct {
	DataPath   string `json:"data_path"`
	FolderName string `json:"folder_name"`
	Content    string `json:"content"`
}

type moveParams struct {
	OldPath string `json:"old_path"`
	NewPath string `json:"new_path"`
}

type iconParams struct {
	Extension string `json:"extension"`
}

func decodeParams(params json.RawMessage, v interface{}) error {
	if len(params) == 0 {
		return fmt.Errorf("missing params")
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("decode params: %w", err)
	}
	return nil
}

func (b *Backend) getAppConfig(json.RawMessage) (interface{}, error) {
	return b.appConfig.Load(), nil
}

func (b *Backend) saveAppConfig(params json.RawMessage) (interface{}, error) {
	var p saveConfigParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if err := b.appConfig.Save(p.Config); err != nil {
		return nil, err
	}
	return nil, nil
}

func (b *Backend) getTodos(params json.RawMessage) (interface{}, error) {
	var p dataPathParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	return b.todos.Todos(p.DataPath), nil
}

func (b *Backend) saveTodos(params json.RawMessage) (interface{}, error) {
	var p saveTodosParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if err := b.todos.SaveTodos(p.DataPath, p.Todos); err != nil {
		return nil, err
	}
	return nil, nil
}

func (b *Backend) createTodoFolder(params json.RawMessage) (interface{}, error) {
	var p dataPathParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	return b.todos.CreateFolder(p.DataPath)
}

func (b *Backend) saveTodoDetail(params json.RawMessage) (interface{}, error) {
	var p detailParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if err := b.todos.SaveDetail(p.DataPath, p.FolderName, p.Content); err != nil {
		return nil, err
	}
	return nil, nil
}

func (b *Backend) getTodoDetail(params json.RawMessage) (interface{}, error) {
	var p detailParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	return b.todos.Detail(p.DataPath, p.FolderName)
}

func (b *Backend) moveData(params json.RawMessage) (interface{}, error) {
	var p moveParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if err := b.mover.Move(p.OldPath, p.NewPath); err != nil {
		return nil, err
	}
	return nil, nil
}

func (b *Backend) getFileIcon(params json.RawMessage) (interface{}, error) {
	var p iconParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	// Icon lookup never fails the caller; failures come back as "".
	return b.icons.FileIcon(p.Extension), nil
}
