// Package guide holds the remediation text printed when a check fails.
// Each guide walks through the fix for both OS families, since the tool
// targets developers setting up a project on whatever machine they have.
package guide

// VenvMissing is shown when the virtual environment folder does not exist.
const VenvMissing = `HOW TO FIX: Missing virtual environment folder
    Create your local project virtual env and activate it.
    Open a terminal in your ROOT PROJECT FOLDER and run each command separately.

    On Windows, use a PowerShell terminal.
       py -m venv .venv
       .\.venv\Scripts\activate
    On Mac or Linux, use your zsh or bash terminal.
       python3 -m venv .venv
       source .venv/bin/activate
`

// NotActive is shown when VIRTUAL_ENV indicates no environment is activated.
const NotActive = `HOW TO FIX: Local project virtual environment is not active
    Create your local project virtual env and activate it.
    Open a terminal in your ROOT PROJECT FOLDER and run each command separately.

    On Windows, use a PowerShell terminal.
       py -m venv .venv
       .\.venv\Scripts\activate
    On Mac or Linux, use your zsh or bash terminal.
       python3 -m venv .venv
       source .venv/bin/activate

    If activation still fails, ensure you've installed a current Python version on your machine.
`

// RequirementsMissing is shown when the requirements file does not exist.
const RequirementsMissing = `HOW TO FIX: Local requirements.txt file is missing
    Create a requirements.txt file in your ROOT PROJECT FOLDER.

    On Windows, use a PowerShell terminal.
       ni requirements.txt
    On Mac or Linux, use your zsh or bash terminal.
       touch requirements.txt

    Then, open your Project Folder in VS Code and edit the file.
    List each required package, one per line, in requirements.txt.
`

// PackagesMissing is shown when declared packages are not installed.
const PackagesMissing = `HOW TO FIX: Not all packages listed in requirements.txt are installed
    Install packages in requirements.txt into your active virtual environment.
    Open a terminal in your ROOT PROJECT FOLDER and run the command.

    On Windows, use a PowerShell terminal.
       py -m pip install --upgrade -r requirements.txt
    On Mac or Linux, use your zsh or bash terminal.
       python3 -m pip install --upgrade -r requirements.txt
`

// PythonMissing is shown when no usable python interpreter is found.
const PythonMissing = `HOW TO FIX: No usable Python interpreter found
    Install a current Python version and make sure it is on your PATH.

    On Windows, install from https://www.python.org/downloads/ and
    re-open your PowerShell terminal afterwards.
    On Mac or Linux, use your system package manager, e.g.
       brew install python3
       sudo apt install python3
`

// RequirementsDrift is shown when requirements.txt changed after the last
// verified install.
const RequirementsDrift = `HOW TO FIX: requirements.txt changed since the last verified install
    Re-install your dependencies into the active virtual environment.
    Open a terminal in your ROOT PROJECT FOLDER and run the command.

    On Windows, use a PowerShell terminal.
       py -m pip install --upgrade -r requirements.txt
    On Mac or Linux, use your zsh or bash terminal.
       python3 -m pip install --upgrade -r requirements.txt

    Then record the new state with: venvcheck drift --record
`
