package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/viant/personnel/directory"
	"github.com/viant/personnel/payload"
	"go.uber.org/zap"
)

type command func(a *app, args []string, out io.Writer, errOut io.Writer) int

var commands = map[string]command{
	"register":    cmdRegister,
	"login":       cmdLogin,
	"logout":      cmdLogout,
	"profile":     cmdProfile,
	"session":     cmdSession,
	"departments": cmdDepartments,
	"employees":   cmdEmployees,
	"overview":    cmdOverview,
}

func printJSON(out io.Writer, value interface{}) int {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "%v\n", value)
		return 1
	}
	_, _ = fmt.Fprintln(out, string(data))
	return 0
}

func credentialsFlags(name string, args []string, errOut io.Writer) (*directory.User, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	user := &directory.User{}
	fs.StringVar(&user.Username, "u", "", "Username")
	fs.StringVar(&user.Password, "p", "", "Password")
	if err := fs.Parse(args); err != nil {
		return nil, 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(errOut, "usage: personnel %s -u <username> -p <password>\n", name)
		return nil, 2
	}
	return user, 0
}

func cmdRegister(a *app, args []string, out io.Writer, errOut io.Writer) int {
	user, code := credentialsFlags("register", args, errOut)
	if user == nil {
		return code
	}
	status, err := a.directory.Auth.Register(a.context(), user)
	if err != nil {
		return report(errOut, "register", err)
	}
	fmt.Fprintf(out, "registered %s (%d)\n", user.Username, status)
	return 0
}

func cmdLogin(a *app, args []string, out io.Writer, errOut io.Writer) int {
	credentials, code := credentialsFlags("login", args, errOut)
	if credentials == nil {
		return code
	}
	user, err := a.directory.Auth.Login(a.context(), credentials)
	if err != nil {
		return report(errOut, "login", err)
	}
	if err = a.saveSession(); err != nil {
		a.logger.Warn("failed to save session", zap.String("location", a.session), zap.Error(err))
	}
	username := credentials.Username
	if user != nil && user.Username != "" {
		username = user.Username
	}
	fmt.Fprintf(out, "logged in as %s\n", username)
	return 0
}

func cmdLogout(a *app, args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "usage: personnel logout")
		return 2
	}
	if _, err := a.directory.Auth.Logout(a.context()); err != nil {
		return report(errOut, "logout", err)
	}
	if err := a.clearSession(); err != nil {
		a.logger.Warn("failed to clear session", zap.String("location", a.session), zap.Error(err))
	}
	fmt.Fprintln(out, "logged out")
	return 0
}

func cmdProfile(a *app, args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "usage: personnel profile")
		return 2
	}
	user, err := a.directory.Auth.Profile(a.context())
	if err != nil {
		return report(errOut, "profile", err)
	}
	return printJSON(out, user)
}

func cmdSession(a *app, args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "usage: personnel session")
		return 2
	}
	user, err := a.directory.Auth.CheckSession(a.context())
	if err != nil {
		return report(errOut, "session", err)
	}
	return printJSON(out, user)
}

func parseID(name string, args []string, errOut io.Writer) (int, []string, bool) {
	if len(args) == 0 {
		fmt.Fprintf(errOut, "usage: personnel %s <id>\n", name)
		return 0, nil, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		fmt.Fprintf(errOut, "%s: invalid id: %s\n", name, args[0])
		return 0, nil, false
	}
	return id, args[1:], true
}

func cmdDepartments(a *app, args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: personnel departments list|get|create|update|delete ...")
		return 2
	}
	ctx := a.context()
	service := a.directory.Departments
	switch args[0] {
	case "list":
		departments, err := service.List(ctx)
		if err != nil {
			return report(errOut, "departments list", err)
		}
		return printJSON(out, departments)
	case "get":
		id, _, ok := parseID("departments get", args[1:], errOut)
		if !ok {
			return 2
		}
		department, err := service.Get(ctx, id)
		if err != nil {
			return report(errOut, "departments get", err)
		}
		return printJSON(out, department)
	case "create":
		department, code := departmentFlags("departments create", args[1:], errOut)
		if department == nil {
			return code
		}
		status, created, err := service.Create(ctx, department)
		if err != nil {
			return report(errOut, "departments create", err)
		}
		if created != nil {
			return printJSON(out, created)
		}
		fmt.Fprintf(out, "department created (%d)\n", status)
		return 0
	case "update":
		id, rest, ok := parseID("departments update", args[1:], errOut)
		if !ok {
			return 2
		}
		department, code := departmentFlags("departments update", rest, errOut)
		if department == nil {
			return code
		}
		updated, err := service.Update(ctx, id, department)
		if err != nil {
			return report(errOut, "departments update", err)
		}
		if updated == nil {
			updated = department
		}
		return printJSON(out, updated)
	case "delete":
		id, _, ok := parseID("departments delete", args[1:], errOut)
		if !ok {
			return 2
		}
		if err := service.Delete(ctx, id); err != nil {
			return report(errOut, "departments delete", err)
		}
		fmt.Fprintf(out, "department %d deleted\n", id)
		return 0
	}
	fmt.Fprintf(errOut, "unknown departments subcommand: %s\n", args[0])
	return 2
}

func departmentFlags(name string, args []string, errOut io.Writer) (*directory.Department, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	department := &directory.Department{}
	fs.StringVar(&department.DepartmentName, "name", "", "Department name")
	fs.StringVar(&department.AddressLineOne, "address1", "", "Address line 1")
	fs.StringVar(&department.AddressLineTwo, "address2", "", "Address line 2")
	fs.StringVar(&department.Town, "town", "", "Town")
	fs.StringVar(&department.County, "county", "", "County")
	fs.StringVar(&department.Postcode, "postcode", "", "Postcode")
	if err := fs.Parse(args); err != nil {
		return nil, 2
	}
	return department, 0
}

func cmdEmployees(a *app, args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: personnel employees list|get|create|update|delete ...")
		return 2
	}
	ctx := a.context()
	service := a.directory.Employees
	switch args[0] {
	case "list":
		employees, err := service.List(ctx)
		if err != nil {
			return report(errOut, "employees list", err)
		}
		return printJSON(out, employees)
	case "get":
		id, _, ok := parseID("employees get", args[1:], errOut)
		if !ok {
			return 2
		}
		employee, err := service.Get(ctx, id)
		if err != nil {
			return report(errOut, "employees get", err)
		}
		return printJSON(out, employee)
	case "create":
		input, code := employeeFlags("employees create", args[1:], errOut)
		if input == nil {
			return code
		}
		status, created, err := service.Create(ctx, input)
		if err != nil {
			return report(errOut, "employees create", err)
		}
		if created != nil {
			return printJSON(out, created)
		}
		fmt.Fprintf(out, "employee created (%d)\n", status)
		return 0
	case "update":
		id, rest, ok := parseID("employees update", args[1:], errOut)
		if !ok {
			return 2
		}
		input, code := employeeFlags("employees update", rest, errOut)
		if input == nil {
			return code
		}
		updated, err := service.Update(ctx, id, input)
		if err != nil {
			return report(errOut, "employees update", err)
		}
		if updated == nil {
			fmt.Fprintf(out, "employee %d updated\n", id)
			return 0
		}
		return printJSON(out, updated)
	case "delete":
		id, _, ok := parseID("employees delete", args[1:], errOut)
		if !ok {
			return 2
		}
		if err := service.Delete(ctx, id); err != nil {
			return report(errOut, "employees delete", err)
		}
		fmt.Fprintf(out, "employee %d deleted\n", id)
		return 0
	}
	fmt.Fprintf(errOut, "unknown employees subcommand: %s\n", args[0])
	return 2
}

func employeeFlags(name string, args []string, errOut io.Writer) (*directory.EmployeeInput, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	input := &directory.EmployeeInput{}
	var picture string
	fs.StringVar(&input.Title, "title", "", "Title: Mr.|Mrs.|Miss|Ms.|Dr.")
	fs.StringVar(&input.FirstName, "first", "", "First name")
	fs.StringVar(&input.LastName, "last", "", "Last name")
	fs.StringVar(&input.EmpNo, "empno", "", "Employee number")
	fs.StringVar(&input.JobTitle, "job", "", "Job title")
	fs.IntVar(&input.DepartmentID, "department", 0, "Department ID")
	fs.StringVar(&input.Telephone, "telephone", "", "Telephone number")
	fs.StringVar(&input.Email, "email", "", "Email")
	fs.StringVar(&picture, "picture", "", "Profile picture file")
	if err := fs.Parse(args); err != nil {
		return nil, 2
	}
	if picture != "" {
		attachment, err := payload.OpenAttachment(picture)
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", name, err)
			return nil, 1
		}
		input.ProfilePicture = attachment
	}
	return input, 0
}
