//go:build wireinject
// +build wireinject

package app

import (
	"cfswitch/internal/adapters/cloudflare"
	"cfswitch/internal/adapters/command_runner"
	"cfswitch/internal/adapters/filesystem"
	"cfswitch/internal/adapters/keyring"
	"cfswitch/internal/adapters/terminal"
	"cfswitch/internal/core"
	"cfswitch/internal/core/handler"
	"cfswitch/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideZalandoKeyring,
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
	cloudflare.ProvideFlarectlClient,
	wire.Bind(new(ports.CloudflareClient), new(*cloudflare.FlarectlClient)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemProfileRepository,
	wire.Bind(new(core.ProfileRepository), new(*core.FileSystemProfileRepository)),
	core.ProvideKeyringTokenRepository,
	wire.Bind(new(core.TokenRepository), new(*core.KeyringTokenRepository)),
	core.ProvideActivator,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectProfileRepository() (core.ProfileRepository, error) {
	wire.Build(
		filesystem.ProvideOsFileSystem,
		wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
		core.ProvideFileSystemProfileRepository,
		wire.Bind(new(core.ProfileRepository), new(*core.FileSystemProfileRepository)),
	)
	return &core.FileSystemProfileRepository{}, nil
}

func InjectAddCommandHandler() (handler.AddCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideAddCommandHandler,
	)
	return handler.AddCommandHandler{}, nil
}

func InjectRemoveCommandHandler() (handler.RemoveCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideRemoveCommandHandler,
	)
	return handler.RemoveCommandHandler{}, nil
}

func InjectListCommandHandler() (handler.ListCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideListCommandHandler,
	)
	return handler.ListCommandHandler{}, nil
}

func InjectCurrentCommandHandler() (handler.CurrentCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideCurrentCommandHandler,
	)
	return handler.CurrentCommandHandler{}, nil
}

func InjectSwitchCommandHandler() (handler.SwitchCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideSwitchCommandHandler,
	)
	return handler.SwitchCommandHandler{}, nil
}

func InjectHookCommandHandler() (handler.HookCommandHandler, error) {
	wire.Build(
		handler.ProvideHookCommandHandler,
	)
	return handler.HookCommandHandler{}, nil
}

func InjectPurgeCommandHandler() (handler.PurgeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePurgeCommandHandler,
	)
	return handler.PurgeCommandHandler{}, nil
}

func InjectLamderaCommandHandler() (handler.LamderaCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideLamderaCommandHandler,
	)
	return handler.LamderaCommandHandler{}, nil
}
