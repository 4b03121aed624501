package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/jhoicas/clientes-api/pkg/clientes"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: "development", Level: "warn", Output: os.Stderr})

	store := clientes.NewStore(clientes.NewClient(cfg.Client.APIURL, cfg.Client.Timeout), log)
	if err := run(context.Background(), store, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, store *clientes.Store, args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		if err := store.Load(ctx); err != nil {
			return err
		}
	case "add":
		if err := llenarFormulario(store, "add", args[1:]); err != nil {
			return err
		}
		if err := store.Submit(ctx); err != nil {
			return err
		}
	case "edit":
		id, rest, err := idArg(args[1:])
		if err != nil {
			return err
		}
		if err := store.Load(ctx); err != nil {
			return err
		}
		c, ok := buscar(store.State().Records, id)
		if !ok {
			return fmt.Errorf("no existe el cliente %d", id)
		}
		store.BeginEdit(c)
		if err := llenarFormulario(store, "edit", rest); err != nil {
			return err
		}
		if err := store.Submit(ctx); err != nil {
			return err
		}
	case "delete":
		id, _, err := idArg(args[1:])
		if err != nil {
			return err
		}
		if err := store.Delete(ctx, id); err != nil {
			return err
		}
	default:
		printUsage(out)
		return fmt.Errorf("comando desconocido: %s", args[0])
	}
	return printTabla(out, store.Rows())
}

// llenarFormulario vuelca los flags presentes en el borrador del Store.
func llenarFormulario(store *clientes.Store, nombre string, args []string) error {
	fs := flag.NewFlagSet(nombre, flag.ContinueOnError)
	valores := make(map[clientes.Campo]*string, len(clientes.Campos))
	for _, c := range clientes.Campos {
		valores[c] = fs.String(string(c), "", "campo "+string(c))
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if err := store.SetField(clientes.Campo(f.Name), *valores[clientes.Campo(f.Name)]); err != nil {
			setErr = errors.Join(setErr, err)
		}
	})
	return setErr
}

func idArg(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, errors.New("falta el id del cliente")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, nil, fmt.Errorf("id inválido: %q", args[0])
	}
	return id, args[1:], nil
}

func buscar(records []clientes.Cliente, id int64) (clientes.Cliente, bool) {
	for _, c := range records {
		if c.IDCliente == id {
			return c, true
		}
	}
	return clientes.Cliente{}, false
}

func printTabla(out io.Writer, rows []clientes.Row) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tDOCUMENTO\tEMAIL")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.Nombre, r.Documento, r.Mail)
	}
	return w.Flush()
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, `Gestión de Clientes

Uso:
  clientes list
  clientes add -nombre Ana -apellido Diaz -nroDoc 123 -fechaNacimiento 1990-01-01 -mail a@x.com -contraseña secret [-tipoDoc DNI]
  clientes edit <id> [-campo valor ...]
  clientes delete <id>

Variables de entorno:
  CLIENTES_API_URL (default http://localhost:8080), CLIENTES_API_TIMEOUT_SECONDS`)
}
