package entity

import (
	"fmt"
	"slices"
)

type Resource string

const (
	ResourceUsers     Resource = "users"
	ResourceSensors   Resource = "sensors"
	ResourceReports   Resource = "reports"
	ResourceStores    Resource = "stores"
	ResourceHierarchy Resource = "hierarchy"
	ResourceSettings  Resource = "settings"
	ResourceSystem    Resource = "system"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"

	ActionManageHierarchy Action = "manage_hierarchy"
	ActionAssign          Action = "assign"
	ActionExport          Action = "export"
	ActionBackup          Action = "backup"
	ActionRestore         Action = "restore"
	ActionLogs            Action = "logs"
	ActionMaintenance     Action = "maintenance"
)

var resourceNames = map[Resource]string{
	ResourceUsers:     "Пользователи",
	ResourceSensors:   "Датчики",
	ResourceReports:   "Отчеты",
	ResourceStores:    "Магазины",
	ResourceHierarchy: "Иерархия",
	ResourceSettings:  "Настройки",
	ResourceSystem:    "Система",
}

var actionNames = map[Action]string{
	ActionCreate:          "Создание",
	ActionRead:            "Чтение",
	ActionUpdate:          "Изменение",
	ActionDelete:          "Удаление",
	ActionManageHierarchy: "Управление иерархией",
	ActionAssign:          "Назначение",
	ActionExport:          "Экспорт",
	ActionBackup:          "Резервное копирование",
	ActionRestore:         "Восстановление",
	ActionLogs:            "Логи",
	ActionMaintenance:     "Обслуживание",
}

// specialActions is the fixed table of per-resource actions beyond CRUD.
var specialActions = map[Resource][]Action{
	ResourceUsers:   {ActionManageHierarchy},
	ResourceSensors: {ActionAssign},
	ResourceReports: {ActionExport},
	ResourceStores:  {ActionAssign},
	ResourceSystem:  {ActionBackup, ActionRestore, ActionLogs, ActionMaintenance},
}

// Resources returns the protectable subsystems in display order.
func Resources() []Resource {
	return []Resource{
		ResourceUsers,
		ResourceSensors,
		ResourceReports,
		ResourceStores,
		ResourceHierarchy,
		ResourceSettings,
		ResourceSystem,
	}
}

func BaseActions() []Action {
	return []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
}

func SpecialActions(r Resource) []Action {
	return slices.Clone(specialActions[r])
}

// ActionsFor returns the base actions followed by the special actions of the resource.
func ActionsFor(r Resource) []Action {
	return append(BaseActions(), specialActions[r]...)
}

func IsSpecial(r Resource, a Action) bool {
	return slices.Contains(specialActions[r], a)
}

func ParseResource(s string) (Resource, error) {
	r := Resource(s)
	if _, ok := resourceNames[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidResource, s)
	}

	return r, nil
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := actionNames[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}

	return a, nil
}

// ValidatePair checks that the action is exposed by the resource.
func ValidatePair(r Resource, a Action) error {
	if _, ok := resourceNames[r]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidResource, r)
	}

	if !slices.Contains(ActionsFor(r), a) {
		return fmt.Errorf("%w: %q for %q", ErrInvalidAction, a, r)
	}

	return nil
}

// ParsePair parses and validates raw identifiers coming from the wire or the command line.
func ParsePair(resource, action string) (Resource, Action, error) {
	r, err := ParseResource(resource)
	if err != nil {
		return "", "", err
	}

	a := Action(action)

	err = ValidatePair(r, a)
	if err != nil {
		return "", "", err
	}

	return r, a, nil
}

func (r Resource) DisplayName() string {
	if name, ok := resourceNames[r]; ok {
		return name
	}

	return string(r)
}

func (a Action) DisplayName() string {
	if name, ok := actionNames[a]; ok {
		return name
	}

	return string(a)
}
